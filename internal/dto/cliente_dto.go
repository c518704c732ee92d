package dto

// RegistrarClienteRequest creates the login user and the customer profile in
// one step. RFC and correo are pre-checked for duplicates before any insert.
type RegistrarClienteRequest struct {
	Username     string  `json:"username"      validate:"required,min=3,max=60"`
	Password     string  `json:"password"      validate:"required,min=6"`
	Nombre       string  `json:"nombre"        validate:"required,min=2,max=200"`
	Correo       string  `json:"correo"        validate:"required,email"`
	Telefono     *string `json:"telefono"`
	Direccion    *string `json:"direccion"`
	Estado       *string `json:"estado"`
	Ciudad       *string `json:"ciudad"`
	CodigoPostal *string `json:"codigo_postal"`
	RFC          string  `json:"rfc"           validate:"required,min=12,max=13"`
}

type ClienteResponse struct {
	ID           string  `json:"id"`
	Nombre       string  `json:"nombre"`
	Correo       string  `json:"correo"`
	Telefono     *string `json:"telefono,omitempty"`
	Direccion    *string `json:"direccion,omitempty"`
	Estado       *string `json:"estado,omitempty"`
	Ciudad       *string `json:"ciudad,omitempty"`
	CodigoPostal *string `json:"codigo_postal,omitempty"`
	RFC          string  `json:"rfc"`
}
