// Package docmodel описывает документ как дерево абзацев и таблиц,
// не зависящее от формата вывода.
//
// Единицы: твипы (1/20 пункта) для разметки, полупункты для кегля, пиксели для изображений.
package docmodel

import "strings"

// Alignment выравнивание абзаца
type Alignment int

const (
	AlignLeft Alignment = iota
	AlignCenter
	AlignRight
	AlignJustify
)

// VerticalAlignment выравнивание содержимого ячейки
type VerticalAlignment int

const (
	VAlignTop VerticalAlignment = iota
	VAlignCenter
	VAlignBottom
)

// Block элемент тела документа: *Paragraph или *Table
type Block interface {
	isBlock()
}

// Image встроенное изображение
type Image struct {
	Data   []byte
	MIME   string
	Width  int
	Height int
}

// Run фрагмент текста с единым оформлением. Size 0 означает кегль документа.
type Run struct {
	Text        string
	Bold        bool
	Italic      bool
	Underline   bool
	Size        int
	BreakBefore bool
	Tab         bool
	Image       *Image
}

// Spacing интервалы абзаца в твипах. Line 0 означает одинарный.
type Spacing struct {
	Before int
	After  int
	Line   int
}

// TabStop позиция табуляции в твипах
type TabStop struct {
	Position int
	Align    Alignment
}

// Paragraph абзац
type Paragraph struct {
	Runs            []Run
	Align           Alignment
	IndentLeft      int
	IndentFirstLine int
	Spacing         Spacing
	TabStops        []TabStop
	PageBreakBefore bool
}

func (*Paragraph) isBlock() {}

// Cell ячейка таблицы
type Cell struct {
	Width      int
	VAlign     VerticalAlignment
	MarginLeft int
	Paragraphs []*Paragraph
}

// Row строка таблицы
type Row struct {
	Cells []Cell
}

// Table таблица фиксированной ширины
type Table struct {
	Width        int
	ColumnWidths []int
	Rows         []Row
	Borderless   bool
}

func (*Table) isBlock() {}

// Page параметры страницы в твипах
type Page struct {
	Width        int
	Height       int
	MarginTop    int
	MarginRight  int
	MarginBottom int
	MarginLeft   int
}

// ContentWidth ширина области текста
func (p Page) ContentWidth() int {
	return p.Width - p.MarginLeft - p.MarginRight
}

// Document документ целиком
type Document struct {
	Page     Page
	Font     string
	FontSize int
	Blocks   []Block
}

// Add добавляет блоки в конец документа
func (d *Document) Add(blocks ...Block) {
	d.Blocks = append(d.Blocks, blocks...)
}

// Paragraphs все абзацы верхнего уровня и из таблиц, в порядке документа
func (d *Document) Paragraphs() []*Paragraph {
	var out []*Paragraph
	for _, b := range d.Blocks {
		switch v := b.(type) {
		case *Paragraph:
			out = append(out, v)
		case *Table:
			for _, row := range v.Rows {
				for _, cell := range row.Cells {
					out = append(out, cell.Paragraphs...)
				}
			}
		}
	}
	return out
}

// Images встроенные изображения в порядке следования
func (d *Document) Images() []*Image {
	var out []*Image
	for _, p := range d.Paragraphs() {
		for _, r := range p.Runs {
			if r.Image != nil {
				out = append(out, r.Image)
			}
		}
	}
	return out
}

// Text текстовая проекция: абзац на строку, табуляция как '\t',
// ячейки таблицы через " | ", изображения как "[изображение]".
func (d *Document) Text() string {
	var b strings.Builder
	for _, block := range d.Blocks {
		switch v := block.(type) {
		case *Paragraph:
			if v.PageBreakBefore {
				b.WriteString("\f")
			}
			writeParagraph(&b, v)
			b.WriteByte('\n')
		case *Table:
			for _, row := range v.Rows {
				for i, cell := range row.Cells {
					if i > 0 {
						b.WriteString(" | ")
					}
					for j, p := range cell.Paragraphs {
						if j > 0 {
							b.WriteByte(' ')
						}
						writeParagraph(&b, p)
					}
				}
				b.WriteByte('\n')
			}
		}
	}
	return b.String()
}

func writeParagraph(b *strings.Builder, p *Paragraph) {
	for _, r := range p.Runs {
		if r.BreakBefore {
			b.WriteByte('\n')
		}
		if r.Tab {
			b.WriteByte('\t')
		}
		if r.Image != nil {
			b.WriteString("[изображение]")
		}
		b.WriteString(r.Text)
	}
}
