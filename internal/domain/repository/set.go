package repository

// Set agrupa los repositorios de un mismo backend de almacenamiento.
type Set struct {
	Users       UserRepository
	Credentials CredentialRepository
	Categories  CategoryRepository
	Products    ProductRepository
	Lots        LotRepository
	Entradas    EntradaRepository
	Salidas     SalidaRepository
}
