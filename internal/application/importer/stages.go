package importer

import (
	"context"
	"time"

	"github.com/jhoicas/catalogo-tienda/internal/domain/entity"
	"github.com/jhoicas/catalogo-tienda/internal/domain/repository"
	"github.com/jhoicas/catalogo-tienda/internal/infrastructure/spreadsheet"
)

// importDeliveryPoint la hoja no tiene cabecera: cada primera celda es una dirección.
func (o *Orchestrator) importDeliveryPoint(ctx context.Context, _ *stageRun, repos repository.Store, row spreadsheet.Row) (rowOutcome, error) {
	_, created, err := upserter{repos}.deliveryPoint(ctx, Text(row.At(0)))
	if err != nil {
		return rowSkipped, err
	}
	return written(created), nil
}

func (o *Orchestrator) importProduct(ctx context.Context, st *stageRun, repos repository.Store, row spreadsheet.Row) (rowOutcome, error) {
	article := row.Text(colArticle)
	if article == "" {
		st.warn(row).Msg("producto sin artículo, fila omitida")
		return rowSkipped, nil
	}

	categoryID, _, err := ResolveOrCreate(ctx, repos, RefCategory, TextOr(row.Get(colCategory), entity.DefaultCategoryName))
	if err != nil {
		return rowSkipped, err
	}
	manufacturerID, _, err := ResolveOrCreate(ctx, repos, RefManufacturer, TextOr(row.Get(colManufacturer), entity.DefaultManufacturerName))
	if err != nil {
		return rowSkipped, err
	}
	supplierID, _, err := ResolveOrCreate(ctx, repos, RefSupplier, TextOr(row.Get(colSupplier), entity.DefaultSupplierName))
	if err != nil {
		return rowSkipped, err
	}

	price, ok := ParsePrice(row.Get(colPrice))
	if !ok && row.Text(colPrice) != "" {
		st.warn(row).Str("article", article).Str("value", row.Text(colPrice)).Msg("precio inválido, se usa 0")
	}
	discount, ok := ParseDiscount(row.Get(colDiscount))
	if !ok && row.Text(colDiscount) != "" {
		st.warn(row).Str("article", article).Str("value", row.Text(colDiscount)).Str("applied", discount.String()).Msg("descuento inválido")
	}
	stock, ok := ParseStock(row.Get(colStock))
	if !ok && row.Text(colStock) != "" {
		st.warn(row).Str("article", article).Str("value", row.Text(colStock)).Msg("existencias inválidas, se usa 0")
	}

	product, created, err := upserter{repos}.product(ctx, &entity.Product{
		Article:        article,
		Name:           row.Text(colProductName),
		Unit:           TextOr(row.Get(colUnit), entity.DefaultUnit),
		Price:          price,
		Discount:       discount,
		Stock:          stock,
		Description:    row.Text(colDescription),
		CategoryID:     categoryID,
		ManufacturerID: manufacturerID,
		SupplierID:     supplierID,
	})
	if err != nil {
		return rowSkipped, err
	}

	if photo := row.Text(colPhoto); photo != "" && !product.HasImage() {
		rel, err := st.images.Relocate(ctx, photo)
		if err != nil {
			return rowSkipped, err
		}
		if rel == "" {
			st.log.Debug().Str("article", article).Str("photo", photo).Msg("foto no encontrada")
		} else if _, err := repos.Products.SetImageIfEmpty(ctx, product.ID, rel); err != nil {
			return rowSkipped, err
		}
	}
	return written(created), nil
}

func (o *Orchestrator) importUser(ctx context.Context, st *stageRun, repos repository.Store, row spreadsheet.Row) (rowOutcome, error) {
	roleName := roleFor(row.Text(colRole))
	role, err := repos.Roles.GetByName(ctx, roleName)
	if err != nil {
		return rowSkipped, err
	}
	if role == nil {
		st.warn(row).Str("role", string(roleName)).Msg("rol no sembrado, fila omitida")
		return rowSkipped, nil
	}

	username := row.Text(colLogin)
	if username == "" {
		st.log.Debug().Int("row", row.Number).Msg("usuario sin login, fila omitida")
		return rowSkipped, nil
	}

	// Usuario existente: no se toca y se evita el costo de bcrypt.
	existing, err := repos.Users.GetByUsername(ctx, username)
	if err != nil {
		return rowSkipped, err
	}
	if existing != nil {
		return rowWritten, nil
	}

	var hash string
	if password := row.Text(colPassword); password != "" {
		if hash, err = o.hasher.Hash(password); err != nil {
			return rowSkipped, err
		}
	}
	_, created, err := upserter{repos}.user(ctx, &entity.User{
		Username:     username,
		FullName:     row.Text(colFullName),
		RoleID:       role.ID,
		Role:         role.Name,
		PasswordHash: hash,
	})
	if err != nil {
		return rowSkipped, err
	}
	return written(created), nil
}

func (o *Orchestrator) importOrder(ctx context.Context, st *stageRun, repos repository.Store, row spreadsheet.Row) (rowOutcome, error) {
	number, ok := ParseOrderNumber(row.Get(colOrderNumber))
	if !ok {
		st.warn(row).Str("value", row.Text(colOrderNumber)).Msg("número de pedido inválido, fila omitida")
		return rowSkipped, nil
	}

	var pointID string
	point, err := MatchAddress(ctx, repos.DeliveryPoints, row.Text(colPickupAddress))
	if err != nil {
		return rowSkipped, err
	}
	if point != nil {
		pointID = point.ID
	} else if addr := row.Text(colPickupAddress); addr != "" {
		st.log.Debug().Int("order_number", number).Str("address", addr).Msg("punto de entrega sin coincidencia")
	}

	orderDate, ok := ParseDate(row.Get(colOrderDate))
	if !ok {
		orderDate = dateOnly(o.now())
		if raw := row.Text(colOrderDate); raw != "" {
			st.warn(row).Int("order_number", number).Str("value", raw).
				Msgf("pedido %d: fecha de pedido inválida %q, se usa la fecha de hoy", number, raw)
		}
	}

	var deliveryDate *time.Time
	if d, ok := ParseDate(row.Get(colDeliveryDate)); ok {
		deliveryDate = &d
	} else if raw := row.Text(colDeliveryDate); raw != "" {
		st.warn(row).Int("order_number", number).Str("value", raw).
			Msgf("pedido %d: fecha de entrega inválida %q, se omite", number, raw)
	}

	_, created, err := upserter{repos}.order(ctx, &entity.Order{
		Number:          number,
		Article:         row.Text(colOrderArticle),
		OrderDate:       orderDate,
		DeliveryDate:    deliveryDate,
		ClientName:      row.Text(colClientName),
		PickupCode:      row.Text(colPickupCode),
		Status:          statusFor(row.Text(colOrderStatus)),
		DeliveryPointID: pointID,
	})
	if err != nil {
		return rowSkipped, err
	}
	return written(created), nil
}
