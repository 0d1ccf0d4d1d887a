package models

import "time"

type Product struct {
	ID               int        `json:"id_product"`
	Title            string     `json:"title"`
	Description      string     `json:"description"`
	DateRegister     *time.Time `json:"date_register"`
	DateLastModified *time.Time `json:"date_last_modified"`
	Image            string     `json:"image"`
	Calification     int        `json:"calification"`
	PuntosVenta      int        `json:"puntos_venta"`
	PuedeRentarse    bool       `json:"puede_rentarse"`
	Destacado        bool       `json:"destacado"`
	TypeID           *int       `json:"type_id"`
	GameTypeID       *int       `json:"tipo_juego_id"`
	Consoles         []Console  `json:"consoles"`
}

type Console struct {
	ID   int    `json:"id_console"`
	Name string `json:"name,omitempty"`
}

// GameDetail - конкретная комбинация продукт/консоль/лицензия с ценой.
// precio_descuento в старой схеме хранит цену до скидки.
type GameDetail struct {
	ID            int     `json:"id_game_detail"`
	ProductID     int     `json:"producto_id"`
	ConsoleID     *int    `json:"consola_id"`
	ConsoleName   *string `json:"console_name"`
	LicenseID     *int    `json:"licencia_id"`
	LicenseName   *string `json:"license_name"`
	Price         int     `json:"precio"`
	OriginalPrice int     `json:"precio_descuento"`
	RentalDays    *int    `json:"duracion_dias_alquiler"`
	Stock         int     `json:"stock"`
}

// PriceCombination - комбинации с одинаковыми консолью, лицензией, сроком и
// ценой, склеенные в одну строку с суммарным остатком.
type PriceCombination struct {
	PK            int    `json:"pk"`
	ConsoleID     *int   `json:"consola"`
	ConsoleName   string `json:"desc_console"`
	LicenseID     *int   `json:"licencia"`
	LicenseName   string `json:"desc_licence"`
	Stock         int    `json:"stock"`
	Price         int    `json:"precio"`
	OriginalPrice int    `json:"precio_descuento"`
	RentalDays    *int   `json:"duracion_dias_alquiler"`
}

type CombinationPrices struct {
	ProductID   int                `json:"product_id"`
	ProductType *int               `json:"product_type"`
	Items       []PriceCombination `json:"items"`
}

type ProductDetail struct {
	Product
	Price         *int         `json:"price"`
	OriginalPrice *int         `json:"precio_descuento"`
	TotalStock    int          `json:"stock"`
	Variants      []GameDetail `json:"details"`
}

type ProductFilter struct {
	Search     string
	TypeID     *int
	GameTypeID *int
	ConsoleID  *int
}
