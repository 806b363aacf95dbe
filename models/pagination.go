package models

import (
	"encoding/json"
)

type Pagination struct {
	Page  int `json:"page"`
	Size  int `json:"size"`
	Total int `json:"total"`
	Pages int `json:"pages"`
}

// Page is a list response. The API has used three spellings for the page
// size and page count fields; all of them decode into Size and Pages.
type Page[T any] struct {
	Items []T
	Pagination
}

func (p *Page[T]) UnmarshalJSON(data []byte) error {
	var raw struct {
		Items      []T  `json:"items"`
		Page       int  `json:"page"`
		Size       *int `json:"size"`
		PageSize   *int `json:"pageSize"`
		PageSize2  *int `json:"page_size"`
		Total      int  `json:"total"`
		Pages      *int `json:"pages"`
		TotalPages *int `json:"totalPages"`
		TotalPage2 *int `json:"total_pages"`
	}
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}

	p.Items = raw.Items
	if p.Items == nil {
		p.Items = []T{}
	}
	p.Page = raw.Page
	p.Total = raw.Total
	p.Size = firstOf(raw.Size, raw.PageSize, raw.PageSize2)
	p.Pages = firstOf(raw.Pages, raw.TotalPages, raw.TotalPage2)
	return nil
}

func (p Page[T]) MarshalJSON() ([]byte, error) {
	return json.Marshal(struct {
		Items []T `json:"items"`
		Pagination
	}{p.Items, p.Pagination})
}

func firstOf(values ...*int) int {
	for _, v := range values {
		if v != nil {
			return *v
		}
	}
	return 0
}
