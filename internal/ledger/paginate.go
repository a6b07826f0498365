package ledger

// Page é uma fatia de tamanho fixo de uma sequência já filtrada e ordenada
type Page[T any] struct {
	Items      []T `json:"items"`
	TotalPages int `json:"totalPages"`
}

// TotalPages nunca é menor que 1, para que "página 1 de 1" seja sempre exibível.
// pageSize < 1 significa uma única página com tudo.
func TotalPages(count, pageSize int) int {
	if pageSize < 1 || count <= pageSize {
		return 1
	}
	return (count + pageSize - 1) / pageSize
}

// Paginate não ajusta pageNumber: fora de [1, TotalPages] o resultado é uma página vazia.
func Paginate[T any](items []T, pageSize, pageNumber int) Page[T] {
	total := TotalPages(len(items), pageSize)
	page := Page[T]{Items: make([]T, 0), TotalPages: total}

	if pageNumber < 1 || pageNumber > total {
		return page
	}

	if pageSize < 1 {
		page.Items = append(page.Items, items...)
		return page
	}

	start := (pageNumber - 1) * pageSize
	end := start + pageSize
	if end > len(items) {
		end = len(items)
	}
	if start < end {
		page.Items = append(page.Items, items[start:end]...)
	}

	return page
}

// ClampPage traz pageNumber para o intervalo [1, totalPages]
func ClampPage(pageNumber, totalPages int) int {
	if totalPages < 1 {
		totalPages = 1
	}
	if pageNumber < 1 {
		return 1
	}
	if pageNumber > totalPages {
		return totalPages
	}
	return pageNumber
}
