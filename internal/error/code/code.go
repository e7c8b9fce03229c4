package code

// Códigos de estado HTTP.
const (
	// StatusOK - 200: éxito.
	StatusOK = 200
	// StatusBadRequest - 400: parámetros inválidos.
	StatusBadRequest = 400
	// StatusUnauthorized - 401: no autenticado.
	StatusUnauthorized = 401
	// StatusForbidden - 403: sin permiso.
	StatusForbidden = 403
	// StatusNotFound - 404: recurso inexistente.
	StatusNotFound = 404
	// StatusInternalServerError - 500: error interno.
	StatusInternalServerError = 500
	// StatusTooManyRequests - 429: demasiadas peticiones.
	StatusTooManyRequests = 429
)

// Códigos de error generales (100xxx).
const (
	// ErrSuccess - 200: éxito.
	ErrSuccess int = iota + 100000
	// ErrUnknown - 500: error desconocido.
	ErrUnknown
	// ErrBind - 400: error al enlazar los parámetros de la petición.
	ErrBind
	// ErrValidation - 400: error de validación.
	ErrValidation
	// ErrTokenInvalid - 401: token inválido.
	ErrTokenInvalid
	// ErrPermissionDenied - 403: el rol no tiene el permiso requerido.
	ErrPermissionDenied
	// ErrTooManyRequests - 429: frecuencia de peticiones demasiado alta.
	ErrTooManyRequests
)

// Códigos de usuario (101xxx).
const (
	// ErrUserNotFound - 404: usuario inexistente.
	ErrUserNotFound int = iota + 101000
	// ErrUserAlreadyExist - 400: usuario duplicado.
	ErrUserAlreadyExist
	// ErrUserPasswordIncorrect - 401: credenciales incorrectas.
	ErrUserPasswordIncorrect
	// ErrPasswordTooWeak - 400: la contraseña no cumple las reglas.
	ErrPasswordTooWeak
)

// Códigos de dispositivo (102xxx).
const (
	// ErrDeviceNotFound - 404: dispositivo inexistente.
	ErrDeviceNotFound int = iota + 102000
	// ErrDeviceAlreadyExist - 400: dispositivo duplicado.
	ErrDeviceAlreadyExist
)

// Códigos de medición y alerta (103xxx).
const (
	// ErrMeasurementNotFound - 404: medición inexistente.
	ErrMeasurementNotFound int = iota + 103000
	// ErrAlertNotFound - 404: alerta inexistente.
	ErrAlertNotFound
	// ErrOrganizationMismatch - 400: la organización no coincide con la del dispositivo.
	ErrOrganizationMismatch
)

// Códigos de tenant (104xxx).
const (
	// ErrOrganizationNotFound - 404: organización inexistente.
	ErrOrganizationNotFound int = iota + 104000
	// ErrZoneNotFound - 404: zona inexistente.
	ErrZoneNotFound
	// ErrCategoryNotFound - 404: categoría inexistente.
	ErrCategoryNotFound
	// ErrDeviceTypeNotFound - 404: tipo de dispositivo inexistente.
	ErrDeviceTypeNotFound
)

// Códigos de base de datos (105xxx).
const (
	// ErrDatabase - 500: error de base de datos.
	ErrDatabase int = iota + 105000
	// ErrRecordNotFound - 404: registro inexistente.
	ErrRecordNotFound
)
