package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"acts-service-go/internal/domain/acts"
)

const sampleYAML = `actType: sdacha
actNumber: "12"
fullDate: «05» марта 2026 г.
year: "2026"
equipmentName: Lenovo ThinkPad E14
serialNumber: SN-001
kitItems:
  - {id: "1", name: ноутбук, condition: ok}
  - {id: "2", name: мышь, condition: defective, defectNote: не работает колесо}
surrenderer:
  fullName: Петров Иван Сергеевич
  rank: рядовой
receiver:
  fullName: Халупа Андрей Игоревич
  rank: лейтенант
  position: командир первого взвода
`

const sampleJSON = `{
  "actType": "vydacha",
  "year": "2026",
  "kitItems": [{"id": "1", "name": "ноутбук", "condition": "ok"}],
  "issuer": {"fullName": "Сидоров Пётр Ильич", "rank": "сержант"},
  "receiver": {"fullName": "Халупа Андрей Игоревич", "rank": "лейтенант"}
}`

func TestDecodeInput_YAML(t *testing.T) {
	in, err := decodeInput([]byte(sampleYAML), ".yml")
	require.NoError(t, err)

	assert.Equal(t, acts.ActSdacha, in.ActType)
	assert.Equal(t, "12", in.ActNumber)
	require.Len(t, in.KitItems, 2)
	assert.Equal(t, acts.ConditionDefective, in.KitItems[1].Condition)
	assert.Equal(t, "не работает колесо", in.KitItems[1].DefectNote)
	require.NotNil(t, in.Receiver)
	assert.Equal(t, "командир первого взвода", in.Receiver.Position)
}

func TestDecodeInput_JSON(t *testing.T) {
	in, err := decodeInput([]byte(sampleJSON), ".json")
	require.NoError(t, err)

	assert.Equal(t, acts.ActVydacha, in.ActType)
	require.NotNil(t, in.Issuer)
	assert.Equal(t, "сержант", in.Issuer.Rank)
}

func TestDecodeInput_Invalid(t *testing.T) {
	_, err := decodeInput([]byte("{not json"), ".json")
	assert.ErrorContains(t, err, "failed to parse JSON")

	_, err = decodeInput([]byte("kitItems: [\n"), ".yaml")
	assert.ErrorContains(t, err, "failed to parse YAML")
}

func TestReadInput_Stdin(t *testing.T) {
	in, err := readInput("-", strings.NewReader(sampleJSON))
	require.NoError(t, err)
	assert.Equal(t, acts.ActVydacha, in.ActType)
}

func TestReadInput_MissingFile(t *testing.T) {
	_, err := readInput(filepath.Join(t.TempDir(), "nope.yaml"), nil)
	assert.ErrorContains(t, err, "failed to read input")
}

func TestOutputPath(t *testing.T) {
	dir := t.TempDir()

	assert.Equal(t, "акт.docx", outputPath("", "акт.docx"))
	assert.Equal(t, filepath.Join(dir, "акт.docx"), outputPath(dir, "акт.docx"))
	assert.Equal(t, filepath.Join(dir, "x.docx"), outputPath(filepath.Join(dir, "x.docx"), "акт.docx"))
}

func TestPreviewCommand(t *testing.T) {
	path := filepath.Join(t.TempDir(), "act.yaml")
	require.NoError(t, os.WriteFile(path, []byte(sampleYAML), 0o644))

	var out bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetArgs([]string{"preview", "-i", path})
	t.Cleanup(func() { rootCmd.SetArgs(nil); rootCmd.SetOut(nil) })

	require.NoError(t, rootCmd.Execute())
	assert.Contains(t, out.String(), "Файл: акт_сдачи_ноутбука_Петров_№12.docx")
	assert.Contains(t, out.String(), "Приложение: true")
	assert.Contains(t, out.String(), "Lenovo ThinkPad E14")
}

func TestRenderCommand_PDFWithoutGotenberg(t *testing.T) {
	path := filepath.Join(t.TempDir(), "act.json")
	require.NoError(t, os.WriteFile(path, []byte(sampleJSON), 0o644))

	rootCmd.SetArgs([]string{"render", "-i", path, "--format", "pdf", "--gotenberg", ""})
	t.Cleanup(func() { rootCmd.SetArgs(nil) })

	err := rootCmd.Execute()
	assert.ErrorIs(t, err, acts.ErrPDFUnavailable)
}
