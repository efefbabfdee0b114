package dto

import "time"

// CategoryRequest body de POST y PUT /categorias.
type CategoryRequest struct {
	Nombre      string  `json:"nombre" validate:"max=120"`
	Descripcion *string `json:"descripcion"`
	Activo      *bool   `json:"activo"`
}

// CategoryResponse categoría.
type CategoryResponse struct {
	IDCategoria        int64     `json:"id_categoria"`
	Nombre             string    `json:"nombre"`
	Descripcion        string    `json:"descripcion"`
	Activo             bool      `json:"activo"`
	FechaActualizacion time.Time `json:"fecha_actualizacion"`
}

// CategoryListResponse GET /categorias.
type CategoryListResponse struct {
	Categorias []CategoryResponse `json:"categorias"`
}

// CategoryEnvelope respuesta de una categoría.
type CategoryEnvelope struct {
	Categoria CategoryResponse `json:"categoria"`
}
