package acts

import (
	"strings"

	"acts-service-go/internal/pkg/docmodel"
	"acts-service-go/internal/pkg/imagemeta"
	"acts-service-go/internal/pkg/textutil"
)

// Параметры страницы и оформления, в твипах и полупунктах
const (
	FontName      = "Times New Roman"
	FontSize      = 28
	FontSizeSmall = 22

	IndentFirst     = 709
	IndentApproval  = 5387
	SignIndentLeft  = 4678
	SignIndentFirst = 2693
	SignLineSpacing = 360
	CellMarginLeft  = 240
	HeadingSpacing  = 720
	PhotoSpacing    = 120

	Missing       = "[ДАННЫЕ ОТСУТСТВУЮТ]"
	BlankName     = "___________"
	SignatureTail = " /_______________"
)

// PageA4 A4, книжная
var PageA4 = docmodel.Page{
	Width:        11906,
	Height:       16838,
	MarginTop:    1134,
	MarginRight:  851,
	MarginBottom: 1134,
	MarginLeft:   1701,
}

// ContentWidth ширина текста на странице
var ContentWidth = PageA4.ContentWidth()

const (
	DefaultCity          = "Санкт-Петербург"
	DefaultApproverTitle = "Командир роты (научной)"
)

// Options настройки, не входящие в данные акта
type Options struct {
	City          string
	ApproverTitle string
	PhotoBox      imagemeta.Box
}

// DefaultOptions значения по умолчанию
func DefaultOptions() Options {
	return Options{
		City:          DefaultCity,
		ApproverTitle: DefaultApproverTitle,
		PhotoBox:      imagemeta.DefaultBox,
	}
}

// Assembler собирает акт в дерево абзацев и таблиц
type Assembler struct {
	opts Options
}

// NewAssembler создает сборщик. Пустые поля opts заменяются значениями по умолчанию.
func NewAssembler(opts Options) *Assembler {
	def := DefaultOptions()
	if strings.TrimSpace(opts.City) == "" {
		opts.City = def.City
	}
	if strings.TrimSpace(opts.ApproverTitle) == "" {
		opts.ApproverTitle = def.ApproverTitle
	}
	if opts.PhotoBox.MaxWidth <= 0 || opts.PhotoBox.MaxHeight <= 0 {
		opts.PhotoBox = def.PhotoBox
	}
	return &Assembler{opts: opts}
}

// Build собирает документ. Порядок разделов фиксирован: шапка, основание,
// основной текст, пункты, подписи, приложение. Необязательные разделы
// только добавляются или пропускаются целиком.
func (a *Assembler) Build(in *ActInput) *docmodel.Document {
	doc := &docmodel.Document{Page: PageA4, Font: FontName, FontSize: FontSize}
	date := a.dateString(in)

	doc.Add(a.header(in, date)...)
	doc.Add(basis(in)...)
	doc.Add(mainSentence(in))
	doc.Add(primaryItem(in))
	doc.Add(additionalItems(in)...)

	doc.Add(blank())
	doc.Add(signatureLine(actionLabel(in), in.actionInitials(), in.Year, date))
	doc.Add(blank())
	doc.Add(signatureLine("Принял: ", in.receiverInitials(), in.Year, date))
	doc.Add(blank())

	if Resolve(in.KitItems, in.Defects, len(in.Photos)).NeedsAppendix {
		doc.Add(a.appendix(in, date)...)
	}
	return doc
}

func (a *Assembler) dateString(in *ActInput) string {
	if d := strings.TrimSpace(in.FullDate); d != "" {
		return d
	}
	return textutil.PlaceholderDate(in.Year)
}

func (a *Assembler) header(in *ActInput, date string) []docmodel.Block {
	approval := func(runs ...docmodel.Run) *docmodel.Paragraph {
		return &docmodel.Paragraph{Runs: runs, IndentLeft: IndentApproval}
	}

	title := "АКТ"
	if n := strings.TrimSpace(in.ActNumber); n != "" {
		title += " № " + n
	}

	return []docmodel.Block{
		approval(text("УТВЕРЖДАЮ")),
		approval(text(a.opts.ApproverTitle)),
		approval(text(val(in.CommanderRank))),
		&docmodel.Paragraph{
			Runs:            []docmodel.Run{text(val(in.CommanderSign))},
			Align:           docmodel.AlignRight,
			IndentLeft:      SignIndentLeft,
			IndentFirstLine: SignIndentFirst,
			Spacing:         docmodel.Spacing{Line: SignLineSpacing},
		},
		approval(dateRuns(date, in.Year)...),
		blank(),
		blank(),
		&docmodel.Paragraph{
			Align: docmodel.AlignCenter,
			Runs: []docmodel.Run{
				{Text: title, Bold: true},
				{Text: "приёма-передачи оборудования", Bold: true, BreakBefore: true},
			},
		},
		&docmodel.Paragraph{
			Runs: append(
				[]docmodel.Run{text("г. " + a.opts.City), {Tab: true}},
				dateRuns(date, in.Year)...,
			),
			TabStops: []docmodel.TabStop{{Position: ContentWidth, Align: docmodel.AlignRight}},
		},
		blank(),
		blank(),
	}
}

func basis(in *ActInput) []docmodel.Block {
	b := strings.TrimSpace(in.BasisDoc)
	if b == "" {
		return nil
	}
	return []docmodel.Block{
		&docmodel.Paragraph{Runs: []docmodel.Run{
			{Text: "Основание: ", Bold: true},
			text(b + "."),
		}},
		blank(),
	}
}

func mainSentence(in *ActInput) *docmodel.Paragraph {
	receiver := firstNonBlank(in.ReceiverLabel, Missing)
	counterparty := firstNonBlank(in.counterpartyGenitive(), Missing)
	return body(textutil.NoWidows(
		"Настоящий акт составлен о том, что " + receiver +
			" принял от " + counterparty + " нижеперечисленное имущество:",
	))
}

func primaryItem(in *ActInput) *docmodel.Paragraph {
	res := Resolve(in.KitItems, in.Defects, len(in.Photos))
	return body(textutil.NoWidows(
		"1. Ноутбук «" + val(in.EquipmentName) + "» (серийный номер: " + val(in.SerialNumber) +
			"; в комплекте: " + KitString(in.KitItems) + ")" + res.Clause + ".",
	))
}

// additionalItems пункты 2 и 3. Номера позиционные: без пропуска пункт 3 остаётся третьим.
func additionalItems(in *ActInput) []docmodel.Block {
	var out []docmodel.Block
	if pass := strings.TrimSpace(in.PassNumbers); pass != "" {
		out = append(out, indented(textutil.NoWidows("2. Электронный пропуск № "+pass+".")))
	}
	if flash := strings.TrimSpace(in.FlashDriveNumbers); flash != "" {
		out = append(out, indented(textutil.NoWidows("3. USB-накопитель МО РФ № "+flash+".")))
	}
	return out
}

func actionLabel(in *ActInput) string {
	if in.IsSdacha() {
		return "Сдал:    "
	}
	return "Выдал:   "
}

// signatureLine таблица без рамок: слева подпись, справа дата
func signatureLine(label, initials, year, date string) *docmodel.Table {
	name := strings.TrimSpace(initials)
	if name == "" {
		name = BlankName
	}
	leftW, rightW := signatureColumns()

	return &docmodel.Table{
		Width:        ContentWidth,
		ColumnWidths: []int{leftW, rightW},
		Borderless:   true,
		Rows: []docmodel.Row{{Cells: []docmodel.Cell{
			{
				Width:  leftW,
				VAlign: docmodel.VAlignBottom,
				Paragraphs: []*docmodel.Paragraph{{Runs: []docmodel.Run{
					text(label),
					{Text: name, Underline: true},
					text(SignatureTail),
				}}},
			},
			{
				Width:      rightW,
				VAlign:     docmodel.VAlignBottom,
				MarginLeft: CellMarginLeft,
				Paragraphs: []*docmodel.Paragraph{{
					Runs:  dateRuns(date, year),
					Align: docmodel.AlignRight,
				}},
			},
		}}},
	}
}

// signatureColumns 55% и 45% ширины текста
func signatureColumns() (int, int) {
	return (ContentWidth*55 + 50) / 100, (ContentWidth*45 + 50) / 100
}

// dateRuns дата с подчёркнутыми днём и месяцем
func dateRuns(date, year string) []docmodel.Run {
	d := strings.TrimSpace(date)
	if textutil.IsPlaceholderDate(d) {
		return []docmodel.Run{
			{Text: "«___»", Underline: true},
			text(" "),
			{Text: "___________", Underline: true},
			text(" " + year + " г."),
		}
	}
	parts, ok := textutil.ParseDate(d)
	if !ok {
		return []docmodel.Run{text(d)}
	}
	return []docmodel.Run{
		{Text: "«" + parts.Day + "»", Underline: true},
		text(" "),
		{Text: parts.Month, Underline: true},
		text(" " + parts.Rest),
	}
}

func val(s string) string {
	if t := strings.TrimSpace(s); t != "" {
		return t
	}
	return Missing
}

func text(s string) docmodel.Run {
	return docmodel.Run{Text: s}
}

func blank() *docmodel.Paragraph {
	return &docmodel.Paragraph{}
}

// body абзац по ширине с красной строкой
func body(s string) *docmodel.Paragraph {
	return &docmodel.Paragraph{
		Runs:            []docmodel.Run{text(s)},
		Align:           docmodel.AlignJustify,
		IndentFirstLine: IndentFirst,
	}
}

func indented(s string) *docmodel.Paragraph {
	return &docmodel.Paragraph{Runs: []docmodel.Run{text(s)}, IndentLeft: IndentFirst}
}
