package diag

import (
	"cmp"
	"slices"

	"phix/internal/source"
)

// Bag — накопитель диагностик с жёстким лимитом. Лимит защищает прогон
// по большому дереву от файла, который генерирует тысячи одинаковых
// лексических ошибок.
type Bag struct {
	items []Diagnostic
	max   uint16
}

func NewBag(max int) *Bag {
	return &Bag{
		items: make([]Diagnostic, 0, max),
		max:   uint16(max),
	}
}

// Add добавляет диагностику. Возвращает false, когда лимит исчерпан и
// запись отброшена.
func (b *Bag) Add(d Diagnostic) bool {
	if len(b.items) >= int(b.max) {
		return false
	}
	b.items = append(b.items, d)
	return true
}

func (b *Bag) Cap() uint16 {
	return b.max
}

func (b *Bag) Len() int {
	return len(b.items)
}

// HasErrors — есть ли хотя бы одна запись уровня Error.
func (b *Bag) HasErrors() bool {
	return b.hasSeverity(SevError)
}

// HasWarnings — есть ли хотя бы одна запись уровня Warning или выше.
func (b *Bag) HasWarnings() bool {
	return b.hasSeverity(SevWarning)
}

func (b *Bag) hasSeverity(min Severity) bool {
	for i := range b.items {
		if b.items[i].Severity >= min {
			return true
		}
	}
	return false
}

// Items отдаёт внутренний срез. Вызывающий не должен его менять.
func (b *Bag) Items() []Diagnostic {
	return b.items
}

// Merge переносит диагностики из other, при необходимости поднимая
// лимит, чтобы ничего не потерять.
func (b *Bag) Merge(other *Bag) {
	total := len(b.items) + len(other.items)
	if uint16(total) > b.max {
		b.max = uint16(total)
	}
	b.items = append(b.items, other.items...)
}

// Sort упорядочивает записи по файлу, спану, severity (ошибки раньше)
// и коду. Порядок стабильный, чтобы вывод был детерминированным.
func (b *Bag) Sort() {
	slices.SortStableFunc(b.items, func(x, y Diagnostic) int {
		if c := cmp.Compare(x.Primary.File, y.Primary.File); c != 0 {
			return c
		}
		if c := cmp.Compare(x.Primary.Start, y.Primary.Start); c != 0 {
			return c
		}
		if c := cmp.Compare(x.Primary.End, y.Primary.End); c != 0 {
			return c
		}
		if x.Severity != y.Severity {
			// Error раньше Warning раньше Info
			return cmp.Compare(y.Severity, x.Severity)
		}
		return cmp.Compare(x.Code, y.Code)
	})
}

type dedupKey struct {
	code Code
	span source.Span
}

// Dedup убирает повторы по паре (код, спан), сохраняя первую запись.
func (b *Bag) Dedup() {
	seen := make(map[dedupKey]struct{}, len(b.items))
	kept := b.items[:0]
	for _, d := range b.items {
		key := dedupKey{code: d.Code, span: d.Primary}
		if _, dup := seen[key]; dup {
			continue
		}
		seen[key] = struct{}{}
		kept = append(kept, d)
	}
	b.items = kept
}
