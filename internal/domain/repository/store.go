package repository

// Store agrupa los puertos que consume el pipeline de importación.
type Store struct {
	Dimensions     DimensionRepository
	Roles          RoleRepository
	DeliveryPoints DeliveryPointRepository
	Products       ProductRepository
	Users          UserRepository
	Orders         OrderRepository
}
