package pagination

import (
	"encoding/json"
	"strconv"
)

// Delta число страниц слева и справа от текущей, которые всегда показываются
const Delta = 2

// EllipsisMarker текстовое представление пропуска страниц
const EllipsisMarker = "..."

// Token элемент панели пагинации: номер страницы или многоточие
type Token struct {
	Page     int
	Ellipsis bool
}

// PageToken создает токен страницы
func PageToken(page int) Token {
	return Token{Page: page}
}

// EllipsisToken создает токен многоточия
func EllipsisToken() Token {
	return Token{Ellipsis: true}
}

// String возвращает номер страницы или "..."
func (t Token) String() string {
	if t.Ellipsis {
		return EllipsisMarker
	}
	return strconv.Itoa(t.Page)
}

// MarshalJSON сериализует страницу числом, многоточие - строкой "..."
func (t Token) MarshalJSON() ([]byte, error) {
	if t.Ellipsis {
		return json.Marshal(EllipsisMarker)
	}
	return json.Marshal(t.Page)
}

// Pages строит последовательность токенов для панели пагинации
// Всегда содержит первую и последнюю страницу и окно из Delta страниц вокруг текущей.
// Между несмежными страницами вставляется ровно одно многоточие.
// Для totalPages <= 1 панель не показывается (nil).
//
// Пример: Pages(5, 10) -> [1 ... 3 4 5 6 7 ... 10]
func Pages(currentPage, totalPages int) []Token {
	if totalPages <= 1 {
		return nil
	}

	if currentPage < 1 {
		currentPage = 1
	}
	if currentPage > totalPages {
		currentPage = totalPages
	}

	included := make([]int, 0, 2*Delta+3)
	included = append(included, 1)

	from := max(2, currentPage-Delta)
	to := min(totalPages-1, currentPage+Delta)
	for p := from; p <= to; p++ {
		included = append(included, p)
	}

	included = append(included, totalPages)

	tokens := make([]Token, 0, len(included)+2)
	prev := 0
	for _, p := range included {
		if prev != 0 && p-prev > 1 {
			tokens = append(tokens, EllipsisToken())
		}
		tokens = append(tokens, PageToken(p))
		prev = p
	}

	return tokens
}
