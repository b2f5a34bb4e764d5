package docxgen

import (
	"archive/zip"
	"bytes"
	"image/color"
	"io"
	"os"
	"testing"

	"github.com/disintegration/imaging"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/unidoc/unioffice/common/license"

	"acts-service-go/internal/pkg/docmodel"
)

func requireLicense(t *testing.T) {
	t.Helper()
	require.NoError(t, SetupLicense(os.Getenv("UNIDOC_LICENSE_API_KEY")))
	if !license.GetLicenseKey().IsLicensed() {
		t.Skip("UniDoc license key is not configured")
	}
}

func testImage(t *testing.T, format imaging.Format) []byte {
	t.Helper()
	var buf bytes.Buffer
	img := imaging.New(40, 20, color.NRGBA{R: 200, A: 255})
	require.NoError(t, imaging.Encode(&buf, img, format))
	return buf.Bytes()
}

func testDocument(t *testing.T) *docmodel.Document {
	doc := &docmodel.Document{
		Page:     docmodel.Page{Width: 11906, Height: 16838, MarginTop: 1134, MarginRight: 851, MarginBottom: 1134, MarginLeft: 1701},
		Font:     "Times New Roman",
		FontSize: 28,
	}
	doc.Add(
		&docmodel.Paragraph{
			Align: docmodel.AlignCenter,
			Runs:  []docmodel.Run{{Text: "АКТ", Bold: true}},
		},
		&docmodel.Paragraph{
			Align:           docmodel.AlignJustify,
			IndentFirstLine: 709,
			Spacing:         docmodel.Spacing{Line: 360},
			TabStops:        []docmodel.TabStop{{Position: 4678, Align: docmodel.AlignLeft}},
			Runs: []docmodel.Run{
				{Text: "Ноутбук", Underline: true},
				{Text: "исправен", Tab: true, Italic: true, Size: 22},
			},
		},
		&docmodel.Table{
			Width:        9354,
			ColumnWidths: []int{5145, 4209},
			Borderless:   true,
			Rows: []docmodel.Row{{Cells: []docmodel.Cell{
				{VAlign: docmodel.VAlignCenter, MarginLeft: 240, Paragraphs: []*docmodel.Paragraph{{Runs: []docmodel.Run{{Text: "Сдал"}}}}},
				{},
			}}},
		},
		&docmodel.Paragraph{
			PageBreakBefore: true,
			Runs: []docmodel.Run{
				{Image: &docmodel.Image{Data: testImage(t, imaging.PNG), MIME: "image/png", Width: 40, Height: 20}},
				{Image: &docmodel.Image{Data: testImage(t, imaging.GIF), MIME: "image/gif", Width: 40, Height: 20}},
				{Image: &docmodel.Image{Data: []byte("garbage"), MIME: "image/jpeg"}, Text: "Фото 1"},
			},
		},
	)
	return doc
}

func readPart(t *testing.T, docx []byte, name string) string {
	t.Helper()
	zr, err := zip.NewReader(bytes.NewReader(docx), int64(len(docx)))
	require.NoError(t, err)
	for _, f := range zr.File {
		if f.Name != name {
			continue
		}
		rc, err := f.Open()
		require.NoError(t, err)
		defer rc.Close()
		data, err := io.ReadAll(rc)
		require.NoError(t, err)
		return string(data)
	}
	t.Fatalf("part %s not found", name)
	return ""
}

func TestSerializer_Serialize(t *testing.T) {
	requireLicense(t)

	docx, err := NewSerializer(nil).Serialize(testDocument(t))
	require.NoError(t, err)

	body := readPart(t, docx, "word/document.xml")
	assert.Contains(t, body, "АКТ")
	assert.Contains(t, body, "Ноутбук")
	assert.Contains(t, body, "Сдал")
	assert.Contains(t, body, "Фото 1")
	assert.Contains(t, body, "Times New Roman")
	assert.Contains(t, body, `w:w="11906"`)
	assert.Contains(t, body, "pageBreakBefore")
}

func TestSerializer_NilDocument(t *testing.T) {
	_, err := NewSerializer(nil).Serialize(nil)
	assert.ErrorIs(t, err, ErrNilDocument)
}

func TestToPNG(t *testing.T) {
	out, err := toPNG(testImage(t, imaging.BMP))
	require.NoError(t, err)
	assert.Equal(t, []byte("\x89PNG"), out[:4])

	_, err = toPNG([]byte("not an image"))
	assert.Error(t, err)
}

func TestEmbeddable(t *testing.T) {
	img, err := embeddable(&docmodel.Image{Data: testImage(t, imaging.JPEG), MIME: "image/jpeg"})
	require.NoError(t, err)
	assert.Equal(t, 40, img.Size.X)

	_, err = embeddable(&docmodel.Image{Data: testImage(t, imaging.GIF), MIME: "image/gif"})
	assert.Error(t, err)
}

func TestMappings(t *testing.T) {
	assert.Equal(t, "both", jc(docmodel.AlignJustify).String())
	assert.Equal(t, "right", tabJc(docmodel.AlignRight).String())
	assert.Equal(t, "center", valign(docmodel.VAlignCenter).String())
}
