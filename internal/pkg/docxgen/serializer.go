// Package docxgen сериализует docmodel.Document в DOCX средствами unioffice.
package docxgen

import (
	"bytes"
	"errors"
	"fmt"

	"github.com/disintegration/imaging"
	"github.com/unidoc/unioffice/color"
	"github.com/unidoc/unioffice/common"
	"github.com/unidoc/unioffice/document"
	"github.com/unidoc/unioffice/measurement"
	"github.com/unidoc/unioffice/schema/soo/wml"
	"go.uber.org/zap"

	"acts-service-go/internal/pkg/docmodel"
)

// ErrNilDocument возвращается при сериализации nil-документа
var ErrNilDocument = errors.New("nil document")

// pixelToPoint 96 dpi
const pixelToPoint = 0.75

// Serializer превращает модель документа в байты DOCX
type Serializer struct {
	log *zap.Logger
}

// NewSerializer создает сериализатор. Nil логгер заменяется на Nop.
func NewSerializer(log *zap.Logger) *Serializer {
	if log == nil {
		log = zap.NewNop()
	}
	return &Serializer{log: log}
}

// Serialize строит DOCX. Изображение, которое не удалось встроить,
// пропускается с предупреждением и не прерывает сборку.
func (s *Serializer) Serialize(doc *docmodel.Document) ([]byte, error) {
	if doc == nil {
		return nil, ErrNilDocument
	}

	w := &writer{
		Serializer: s,
		src:        doc,
		out:        document.New(),
	}
	w.setupPage()

	for _, block := range doc.Blocks {
		switch b := block.(type) {
		case *docmodel.Paragraph:
			w.paragraph(w.out.AddParagraph(), b)
		case *docmodel.Table:
			w.table(b)
		}
	}

	var buf bytes.Buffer
	if err := w.out.Save(&buf); err != nil {
		return nil, fmt.Errorf("failed to save docx: %w", err)
	}
	return buf.Bytes(), nil
}

type writer struct {
	*Serializer
	src *docmodel.Document
	out *document.Document
}

func twips(v int) measurement.Distance {
	return measurement.Distance(v) * measurement.Twips
}

func (w *writer) setupPage() {
	p := w.src.Page
	sect := w.out.BodySection()
	sect.SetPageSizeAndOrientation(twips(p.Width), twips(p.Height), wml.ST_PageOrientationPortrait)
	sect.SetPageMargins(
		twips(p.MarginTop), twips(p.MarginRight), twips(p.MarginBottom), twips(p.MarginLeft),
		0, 0, 0,
	)
}

func (w *writer) paragraph(para document.Paragraph, src *docmodel.Paragraph) {
	props := para.Properties()
	props.SetAlignment(jc(src.Align))
	if src.IndentLeft != 0 {
		props.SetStartIndent(twips(src.IndentLeft))
	}
	if src.IndentFirstLine != 0 {
		props.SetFirstLineIndent(twips(src.IndentFirstLine))
	}
	if src.PageBreakBefore {
		props.SetPageBreakBefore(true)
	}
	for _, ts := range src.TabStops {
		props.AddTabStop(twips(ts.Position), tabJc(ts.Align), wml.ST_TabTlcNone)
	}

	spacing := props.Spacing()
	spacing.SetBefore(twips(src.Spacing.Before))
	spacing.SetAfter(twips(src.Spacing.After))
	if src.Spacing.Line > 0 {
		spacing.SetLineSpacing(twips(src.Spacing.Line), wml.ST_LineSpacingRuleAuto)
	}

	for i := range src.Runs {
		w.run(para, &src.Runs[i])
	}
}

func (w *writer) run(para document.Paragraph, src *docmodel.Run) {
	r := para.AddRun()
	props := r.Properties()
	props.SetFontFamily(w.src.Font)

	size := src.Size
	if size == 0 {
		size = w.src.FontSize
	}
	if size > 0 {
		props.SetSize(measurement.Distance(size) * measurement.HalfPoint)
	}
	if src.Bold {
		props.SetBold(true)
	}
	if src.Italic {
		props.SetItalic(true)
	}
	if src.Underline {
		props.SetUnderline(wml.ST_UnderlineSingle, color.Auto)
	}

	if src.BreakBefore {
		r.AddBreak()
	}
	if src.Tab {
		r.AddTab()
	}
	if src.Image != nil {
		if err := w.image(r, src.Image); err != nil {
			w.log.Warn("Skipping image",
				zap.String("mime", src.Image.MIME),
				zap.Int("size", len(src.Image.Data)),
				zap.Error(err),
			)
		}
	}
	if src.Text != "" {
		r.AddText(src.Text)
	}
}

func (w *writer) image(r document.Run, src *docmodel.Image) error {
	data := src.Data
	img, err := embeddable(src)
	if err != nil {
		data, err = toPNG(src.Data)
		if err != nil {
			return err
		}
		if img, err = common.ImageFromBytes(data); err != nil {
			return fmt.Errorf("failed to read converted image: %w", err)
		}
	}

	ref, err := w.out.AddImage(img)
	if err != nil {
		return fmt.Errorf("failed to add image: %w", err)
	}
	inline, err := r.AddDrawingInline(ref)
	if err != nil {
		return fmt.Errorf("failed to add inline drawing: %w", err)
	}

	width, height := src.Width, src.Height
	if width <= 0 || height <= 0 {
		width, height = img.Size.X, img.Size.Y
	}
	inline.SetSize(
		measurement.Distance(float64(width)*pixelToPoint)*measurement.Point,
		measurement.Distance(float64(height)*pixelToPoint)*measurement.Point,
	)
	return nil
}

// embeddable возвращает изображение как есть, если Word его примет
func embeddable(src *docmodel.Image) (common.Image, error) {
	switch src.MIME {
	case "image/jpeg", "image/jpg", "image/png":
		return common.ImageFromBytes(src.Data)
	}
	return common.Image{}, fmt.Errorf("unsupported image type %q", src.MIME)
}

// toPNG перекодирует gif, bmp, tiff и прочие форматы в PNG
func toPNG(data []byte) ([]byte, error) {
	img, err := imaging.Decode(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("failed to decode image: %w", err)
	}
	var buf bytes.Buffer
	if err := imaging.Encode(&buf, img, imaging.PNG); err != nil {
		return nil, fmt.Errorf("failed to encode png: %w", err)
	}
	return buf.Bytes(), nil
}

func (w *writer) table(src *docmodel.Table) {
	t := w.out.AddTable()
	props := t.Properties()
	props.SetWidth(twips(src.Width))
	props.SetLayout(wml.ST_TblLayoutTypeFixed)
	if src.Borderless {
		props.Borders().SetAll(wml.ST_BorderNone, color.Auto, 0)
	} else {
		props.Borders().SetAll(wml.ST_BorderSingle, color.Black, measurement.Point/2)
	}

	for _, row := range src.Rows {
		r := t.AddRow()
		for i, cell := range row.Cells {
			c := r.AddCell()
			cp := c.Properties()

			width := cell.Width
			if width == 0 && i < len(src.ColumnWidths) {
				width = src.ColumnWidths[i]
			}
			if width > 0 {
				cp.SetWidth(twips(width))
			}
			cp.SetVerticalAlignment(valign(cell.VAlign))
			if cell.MarginLeft > 0 {
				cp.Margins().SetLeft(twips(cell.MarginLeft))
			}

			// ячейка без абзаца делает DOCX невалидным
			if len(cell.Paragraphs) == 0 {
				c.AddParagraph()
			}
			for _, p := range cell.Paragraphs {
				w.paragraph(c.AddParagraph(), p)
			}
		}
	}
}

func jc(a docmodel.Alignment) wml.ST_Jc {
	switch a {
	case docmodel.AlignCenter:
		return wml.ST_JcCenter
	case docmodel.AlignRight:
		return wml.ST_JcRight
	case docmodel.AlignJustify:
		return wml.ST_JcBoth
	default:
		return wml.ST_JcLeft
	}
}

func tabJc(a docmodel.Alignment) wml.ST_TabJc {
	switch a {
	case docmodel.AlignCenter:
		return wml.ST_TabJcCenter
	case docmodel.AlignRight:
		return wml.ST_TabJcRight
	default:
		return wml.ST_TabJcLeft
	}
}

func valign(v docmodel.VerticalAlignment) wml.ST_VerticalJc {
	switch v {
	case docmodel.VAlignCenter:
		return wml.ST_VerticalJcCenter
	case docmodel.VAlignBottom:
		return wml.ST_VerticalJcBottom
	default:
		return wml.ST_VerticalJcTop
	}
}
