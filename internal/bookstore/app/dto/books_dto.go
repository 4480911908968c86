package dto

import (
	"bytes"
	"encoding/json"
	"strconv"
	"strings"

	"bookstore/internal/bookstore/domain/entities"
)

// BookRequest содержит поля новой книги. Идентификатор назначает хранилище,
// поэтому _id из тела запроса не читается.
type BookRequest struct {
	Title    Text   `json:"title"`
	Author   Text   `json:"author"`
	Price    Number `json:"price"`
	ImageURL Text   `json:"imageUrl"`
}

// ToEntity переносит поля запроса в доменную книгу.
func (r *BookRequest) ToEntity() *entities.Book {
	return &entities.Book{
		Title:    string(r.Title),
		Author:   string(r.Author),
		Price:    float64(r.Price),
		ImageURL: string(r.ImageURL),
	}
}

// Number принимает JSON число или строку с числом ("9.99").
// Все, что числом не является, дает значение по умолчанию 0.
type Number float64

func (n *Number) UnmarshalJSON(data []byte) error {
	var f float64
	if err := json.Unmarshal(data, &f); err == nil {
		*n = Number(f)
		return nil
	}

	var s string
	if err := json.Unmarshal(data, &s); err == nil {
		if f, err := strconv.ParseFloat(strings.TrimSpace(s), 64); err == nil {
			*n = Number(f)
			return nil
		}
	}

	*n = 0
	return nil
}

// Text принимает JSON строку, а числа и булевы значения хранит их текстом.
// null, объекты и массивы дают пустую строку.
type Text string

func (t *Text) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err == nil {
		*t = Text(s)
		return nil
	}

	raw := bytes.TrimSpace(data)
	var scalar any
	if err := json.Unmarshal(raw, &scalar); err == nil {
		switch scalar.(type) {
		case float64, bool:
			*t = Text(raw)
			return nil
		}
	}

	*t = ""
	return nil
}
