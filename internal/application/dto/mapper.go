package dto

import (
	"github.com/jhoicas/inventario-lotes-api/internal/domain/entity"
	"github.com/jhoicas/inventario-lotes-api/internal/domain/inventory"
)

func fromSummary(s *entity.UserSummary) *UserSummaryResponse {
	if s == nil {
		return nil
	}
	return &UserSummaryResponse{Username: s.Username, Nombre: s.Nombre, Apellido: s.Apellido}
}

// FromCategory convierte una categoría.
func FromCategory(c *entity.Category) CategoryResponse {
	return CategoryResponse{
		IDCategoria:        c.ID,
		Nombre:             c.Name,
		Descripcion:        c.Description,
		Activo:             c.Active,
		FechaActualizacion: c.UpdatedAt,
	}
}

// FromCategories convierte una lista; nunca devuelve nil para que el JSON sea [].
func FromCategories(cs []*entity.Category) []CategoryResponse {
	out := make([]CategoryResponse, 0, len(cs))
	for _, c := range cs {
		out = append(out, FromCategory(c))
	}
	return out
}

// FromProduct convierte un producto con sus relaciones cargadas.
func FromProduct(p *entity.Product) ProductResponse {
	out := ProductResponse{
		IDProducto:         p.ID,
		Codigo:             p.Code,
		NombreArticulo:     p.Name,
		Descripcion:        p.Description,
		Activo:             p.Active,
		CategoriaID:        p.CategoryID,
		IDUsuarioCreador:   p.CreatorID,
		FechaCreacion:      p.CreatedAt,
		FechaActualizacion: p.UpdatedAt,
		Usuarios:           fromSummary(p.Creator),
	}
	if p.Category != nil {
		c := FromCategory(p.Category)
		out.Categorias = &c
	}
	if p.Lots != nil {
		out.Lotes = make([]LotResponse, 0, len(p.Lots))
		for i := range p.Lots {
			out.Lotes = append(out.Lotes, FromLot(&p.Lots[i]))
		}
	}
	return out
}

func FromProducts(ps []*entity.Product) []ProductResponse {
	out := make([]ProductResponse, 0, len(ps))
	for _, p := range ps {
		out = append(out, FromProduct(p))
	}
	return out
}

// FromLot convierte un lote; el producto se incluye sin sus propios lotes.
func FromLot(l *entity.Lot) LotResponse {
	out := LotResponse{
		IDLote:           l.ID,
		IDProducto:       l.ProductID,
		NumeroLote:       l.Number,
		FechaVencimiento: inventory.FormatDate(l.ExpiryDate),
		CantidadInicial:  l.InitialQuantity,
		StockActual:      l.CurrentStock,
		Estado:           l.Status,
		IDUsuarioCreador: l.CreatorID,
		FechaCreacion:    l.CreatedAt,
		Usuarios:         fromSummary(l.Creator),
	}
	if l.Product != nil {
		p := *l.Product
		p.Lots = nil
		pr := FromProduct(&p)
		out.Productos = &pr
	}
	return out
}

func FromLots(ls []*entity.Lot) []LotResponse {
	out := make([]LotResponse, 0, len(ls))
	for _, l := range ls {
		out = append(out, FromLot(l))
	}
	return out
}

// FromStockEntries convierte la vista de stock al formato de filas planas.
func FromStockEntries(entries []entity.StockEntry) []StockRow {
	out := make([]StockRow, 0, len(entries))
	for _, e := range entries {
		row := StockRow{
			ID:                   e.Product.ID,
			Codigo:               e.Product.Code,
			Nombre:               e.Product.Name,
			CategoriaID:          e.Product.CategoryID,
			Lote:                 e.Lot.Number,
			FechaVencimiento:     inventory.FormatDate(e.Lot.ExpiryDate),
			UnidadMedida:         "unidades",
			StockActual:          e.Lot.CurrentStock,
			EstadoVencimiento:    e.ExpiryStatus,
			DiasHastaVencimiento: e.DaysUntilExpiry,
			IDLote:               e.Lot.ID,
			CantidadInicial:      e.Lot.InitialQuantity,
			EstadoLote:           e.Lot.Status,
		}
		if c := e.Product.Category; c != nil {
			row.Categoria = &StockCategory{ID: c.ID, Nombre: c.Name, Descripcion: c.Description}
		}
		out = append(out, row)
	}
	return out
}

// FromEntrada convierte una entrada con sus detalles.
func FromEntrada(e *entity.Entrada) EntradaResponse {
	out := EntradaResponse{
		IDEntrada:            e.ID,
		NumeroActa:           e.ActaNumber,
		FechaEntrada:         inventory.FormatDate(e.Date),
		Proveedor:            e.Supplier,
		IDUsuarioRegistrador: e.RegisteredBy,
		FechaCreacion:        e.CreatedAt,
		Usuarios:             fromSummary(e.Registrar),
		DetalleEntradas:      make([]EntradaLineResponse, 0, len(e.Lines)),
	}
	if e.Attachment != "" {
		a := e.Attachment
		out.ArchivoActa = &a
	}
	for _, l := range e.Lines {
		line := EntradaLineResponse{
			IDDetalleEntrada:     l.ID,
			IDEntrada:            l.EntradaID,
			IDLote:               l.LotID,
			Cantidad:             l.Quantity,
			IDUsuarioRegistrador: l.RegisteredBy,
		}
		if l.Lot != nil {
			lr := FromLot(l.Lot)
			line.Lotes = &lr
		}
		out.DetalleEntradas = append(out.DetalleEntradas, line)
	}
	return out
}

func FromEntradas(es []*entity.Entrada) []EntradaResponse {
	out := make([]EntradaResponse, 0, len(es))
	for _, e := range es {
		out = append(out, FromEntrada(e))
	}
	return out
}

// FromSalida convierte una salida con sus detalles.
func FromSalida(s *entity.Salida) SalidaResponse {
	out := SalidaResponse{
		IDSalida:             s.ID,
		NumeroActaSalida:     s.ActaNumber,
		FechaSalida:          inventory.FormatDate(s.Date),
		Beneficiario:         s.Beneficiary,
		LugarSalida:          s.Place,
		IDUsuarioRegistrador: s.RegisteredBy,
		FechaCreacion:        s.CreatedAt,
		Usuarios:             fromSummary(s.Registrar),
		DetalleSalidas:       make([]SalidaLineResponse, 0, len(s.Lines)),
	}
	for _, l := range s.Lines {
		line := SalidaLineResponse{
			IDDetalleSalida:      l.ID,
			IDSalida:             l.SalidaID,
			IDLote:               l.LotID,
			Cantidad:             l.Quantity,
			IDUsuarioRegistrador: l.RegisteredBy,
		}
		if l.Lot != nil {
			lr := FromLot(l.Lot)
			line.Lotes = &lr
		}
		out.DetalleSalidas = append(out.DetalleSalidas, line)
	}
	return out
}

func FromSalidas(ss []*entity.Salida) []SalidaResponse {
	out := make([]SalidaResponse, 0, len(ss))
	for _, s := range ss {
		out = append(out, FromSalida(s))
	}
	return out
}

// FromUser convierte una fila del directorio.
func FromUser(u *entity.User) UserResponse {
	return UserResponse{
		IDUsuario:     u.ID,
		AuthUID:       u.AuthUID,
		Username:      u.Username,
		Email:         u.Email,
		Nombre:        u.Nombre,
		Apellido:      u.Apellido,
		Rol:           u.Role,
		Activo:        u.Active,
		FechaCreacion: u.CreatedAt,
	}
}

func FromUsers(us []*entity.User) []UserResponse {
	out := make([]UserResponse, 0, len(us))
	for _, u := range us {
		out = append(out, FromUser(u))
	}
	return out
}

// FromVerified convierte el usuario verificado al formato de GET /auth/verify.
func FromVerified(u *entity.User) VerifiedUser {
	return VerifiedUser{
		ID:            u.ID,
		AuthUID:       u.AuthUID,
		Username:      u.Username,
		Email:         u.Email,
		Nombre:        u.Nombre,
		Apellido:      u.Apellido,
		Rol:           u.Role,
		Activo:        u.Active,
		FechaCreacion: u.CreatedAt,
	}
}
