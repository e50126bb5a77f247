package domain

import "errors"

// Errores de dominio (sin dependencias externas).
var (
	ErrNotFound             = errors.New("recurso no encontrado")
	ErrUserNotFound         = errors.New("usuario no encontrado")
	ErrEmailAlreadyExists   = errors.New("el email ya está registrado")
	ErrInvalidInput         = errors.New("entrada inválida")
	ErrDuplicateID          = errors.New("el id ya está en uso")
	ErrUnauthorized         = errors.New("no autorizado")
	ErrForbidden            = errors.New("acceso denegado")
	ErrMasterAdminProtected = errors.New("el administrador maestro no puede eliminarse ni perder privilegios")
	ErrSelfDelete           = errors.New("no puedes eliminar tu propia cuenta activa")
	ErrCorePermission       = errors.New("los permisos base del sistema no pueden eliminarse")
)
