package entities

// Book - запись каталога. ID назначается хранилищем.
// Имена JSON-полей совпадают с теми, что ожидают существующие клиенты.
type Book struct {
	ID       string  `json:"_id"`
	Title    string  `json:"title"`
	Author   string  `json:"author"`
	Price    float64 `json:"price"`
	ImageURL string  `json:"imageUrl"`
}
