package models

// Record es cualquier entidad que se guarda en su propia colección
type Record interface {
	Collection() string
	ApplyDefaults()
}
