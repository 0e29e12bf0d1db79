package importer

import "github.com/jhoicas/catalogo-tienda/internal/domain/entity"

// Libros esperados en el directorio de importación (sin extensión: .xlsx o .csv).
const (
	FileDeliveryPoints = "Пункты выдачи_import"
	FileProducts       = "Tovar"
	FileUsers          = "user_import"
	FileOrders         = "Заказ_import"
)

// Nombres de etapa en el reporte y en los logs.
const (
	SheetDeliveryPoints = "delivery_points"
	SheetProducts       = "products"
	SheetUsers          = "users"
	SheetOrders         = "orders"
)

// Columnas de Tovar.
const (
	colArticle      = "Артикул"
	colProductName  = "Наименование товара"
	colUnit         = "Единица измерения"
	colPrice        = "Цена"
	colSupplier     = "Поставщик"
	colManufacturer = "Производитель"
	colCategory     = "Категория товара"
	colDiscount     = "Действующая скидка"
	colStock        = "Кол-во на складе"
	colDescription  = "Описание товара"
	colPhoto        = "Фото"
)

// Columnas de user_import.
const (
	colRole     = "Роль сотрудника"
	colFullName = "ФИО"
	colLogin    = "Логин"
	colPassword = "Пароль"
)

// Columnas de Заказ_import.
const (
	colOrderNumber   = "Номер заказа"
	colOrderArticle  = "Артикул заказа"
	colOrderDate     = "Дата заказа"
	colDeliveryDate  = "Дата доставки"
	colPickupAddress = "Адрес пункта выдачи"
	colClientName    = "ФИО авторизированного клиента"
	colPickupCode    = "Код для получения"
	colOrderStatus   = "Статус заказа"
)

// roleByTitle traduce el cargo de la hoja; lo no mapeado es cliente.
var roleByTitle = map[string]entity.RoleName{
	"Администратор":         entity.RoleAdmin,
	"Менеджер":              entity.RoleManager,
	"Авторизованный клиент": entity.RoleClient,
}

// statusByTitle traduce el estado de la hoja; lo no mapeado es nuevo.
var statusByTitle = map[string]entity.OrderStatus{
	"Завершен": entity.OrderStatusCompleted,
	"Новый":    entity.OrderStatusNew,
	"Отменен":  entity.OrderStatusCancelled,
}

func roleFor(title string) entity.RoleName {
	if r, ok := roleByTitle[title]; ok {
		return r
	}
	return entity.RoleClient
}

func statusFor(title string) entity.OrderStatus {
	if s, ok := statusByTitle[title]; ok {
		return s
	}
	return entity.OrderStatusNew
}
