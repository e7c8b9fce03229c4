package code

// Mensajes por código de error
var codeMessageMap = map[int]string{
	ErrSuccess:          "éxito",
	ErrUnknown:          "error desconocido",
	ErrBind:             "error al leer los parámetros de la petición",
	ErrValidation:       "error de validación",
	ErrTokenInvalid:     "token de autenticación inválido",
	ErrPermissionDenied: "no tienes permiso para realizar esta acción",
	ErrTooManyRequests:  "demasiadas peticiones, intenta más tarde",

	ErrUserNotFound:          "el usuario no existe",
	ErrUserAlreadyExist:      "el usuario ya existe",
	ErrUserPasswordIncorrect: "usuario o contraseña incorrectos",
	ErrPasswordTooWeak:       "la contraseña no cumple los requisitos de seguridad",

	ErrDeviceNotFound:     "el dispositivo no existe",
	ErrDeviceAlreadyExist: "el dispositivo ya existe",

	ErrMeasurementNotFound:  "la medición no existe",
	ErrAlertNotFound:        "la alerta no existe",
	ErrOrganizationMismatch: "la organización no coincide con la del dispositivo",

	ErrOrganizationNotFound: "la organización no existe",
	ErrZoneNotFound:         "la zona no existe",
	ErrCategoryNotFound:     "la categoría no existe",
	ErrDeviceTypeNotFound:   "el tipo de dispositivo no existe",

	ErrDatabase:       "error de base de datos",
	ErrRecordNotFound: "el registro no existe",
}

// Estado HTTP por código de error
var codeStatusMap = map[int]int{
	ErrSuccess:          StatusOK,
	ErrUnknown:          StatusInternalServerError,
	ErrBind:             StatusBadRequest,
	ErrValidation:       StatusBadRequest,
	ErrTokenInvalid:     StatusUnauthorized,
	ErrPermissionDenied: StatusForbidden,
	ErrTooManyRequests:  StatusTooManyRequests,

	ErrUserNotFound:          StatusNotFound,
	ErrUserAlreadyExist:      StatusBadRequest,
	ErrUserPasswordIncorrect: StatusUnauthorized,
	ErrPasswordTooWeak:       StatusBadRequest,

	ErrDeviceNotFound:     StatusNotFound,
	ErrDeviceAlreadyExist: StatusBadRequest,

	ErrMeasurementNotFound:  StatusNotFound,
	ErrAlertNotFound:        StatusNotFound,
	ErrOrganizationMismatch: StatusBadRequest,

	ErrOrganizationNotFound: StatusNotFound,
	ErrZoneNotFound:         StatusNotFound,
	ErrCategoryNotFound:     StatusNotFound,
	ErrDeviceTypeNotFound:   StatusNotFound,

	ErrDatabase:       StatusInternalServerError,
	ErrRecordNotFound: StatusNotFound,
}

// GetMessage devuelve el mensaje asociado al código
func GetMessage(code int) string {
	if msg, ok := codeMessageMap[code]; ok {
		return msg
	}
	return "error desconocido"
}

// GetStatus devuelve el estado HTTP asociado al código
func GetStatus(code int) int {
	if status, ok := codeStatusMap[code]; ok {
		return status
	}
	return StatusInternalServerError
}
