package acts

import (
	"fmt"
	"strings"

	"acts-service-go/internal/pkg/docmodel"
	"acts-service-go/internal/pkg/grammar"
	"acts-service-go/internal/pkg/imagemeta"
	"acts-service-go/internal/pkg/textutil"
)

const confirmation = "Принимающая сторона подтверждает, что указанные выше недостатки " +
	"зафиксированы сторонами совместно и известны принимающей стороне на момент приёма имущества."

// DefectLines строки перечня приложения: сначала позиции комплекта
// с отклонениями (нумерация с 1), затем «Прочие дефекты» следующим номером
func DefectLines(items []KitItem, defects string) []string {
	var lines []string
	for _, it := range items {
		if !GoesToAppendix(it.Condition) {
			continue
		}
		line := fmt.Sprintf("%d. %s – %s", len(lines)+1, val(it.Name),
			ConditionAdjective(it.Condition, grammar.GenderOf(it.Name)))
		if note := strings.TrimSpace(it.DefectNote); note != "" {
			line += ": " + note
		}
		lines = append(lines, line+".")
	}
	if d := strings.TrimSpace(defects); d != "" {
		lines = append(lines, textutil.NoWidows(fmt.Sprintf("%d. Прочие дефекты: %s.", len(lines)+1, d)))
	}
	return lines
}

func (a *Assembler) appendix(in *ActInput, date string) []docmodel.Block {
	heading := "Приложение"
	if n := strings.TrimSpace(in.ActNumber); n != "" {
		heading += " к акту № " + n
	}

	blocks := []docmodel.Block{
		&docmodel.Paragraph{PageBreakBefore: true},
		&docmodel.Paragraph{
			Runs:    []docmodel.Run{{Text: heading, Bold: true}},
			Align:   docmodel.AlignCenter,
			Spacing: docmodel.Spacing{Line: HeadingSpacing},
		},
		body(textutil.NoWidows(
			"Перечень неисправностей и отклонений от штатного состояния ноутбука «" + val(in.EquipmentName) +
				"» (серийный номер: " + val(in.SerialNumber) + "), зафиксированных при передаче " + date + ":",
		)),
		blank(),
	}

	for _, line := range DefectLines(in.KitItems, in.Defects) {
		blocks = append(blocks, indented(line))
	}
	blocks = append(blocks, blank())
	blocks = append(blocks, a.photos(in.Photos)...)

	rank := strings.TrimSpace(in.ReceiverRankShort)
	if rank == "" {
		rank = textutil.DefaultRank
	}

	return append(blocks,
		&docmodel.Paragraph{Runs: []docmodel.Run{text(confirmation)}, Align: docmodel.AlignJustify},
		blank(),
		&docmodel.Paragraph{Runs: []docmodel.Run{text("С перечнем ознакомлен и согласен:")}},
		blank(),
		&docmodel.Paragraph{Runs: []docmodel.Run{text(rank)}},
		&docmodel.Paragraph{
			Runs:  []docmodel.Run{{Text: val(in.ReceiverLastNameInitials), Underline: true}},
			Align: docmodel.AlignRight,
		},
		&docmodel.Paragraph{Runs: dateRuns(date, in.Year)},
	)
}

// photos блок «Фотоматериалы». Нечитаемые фото пропускаются, номер в подписи
// остаётся по порядку во входных данных.
func (a *Assembler) photos(photos []Photo) []docmodel.Block {
	if len(photos) == 0 {
		return nil
	}

	blocks := []docmodel.Block{
		blank(),
		&docmodel.Paragraph{Runs: []docmodel.Run{{Text: "Фотоматериалы:", Bold: true}}},
	}
	for i, photo := range photos {
		payload, err := imagemeta.DecodeDataURL(photo.DataURL)
		if err != nil {
			continue
		}
		size := imagemeta.Fit(payload.Data, a.opts.PhotoBox)

		caption := fmt.Sprintf("Фото %d", i+1)
		if c := strings.TrimSpace(photo.Caption); c != "" {
			caption += ": " + c
		}

		blocks = append(blocks,
			&docmodel.Paragraph{
				Runs: []docmodel.Run{{Image: &docmodel.Image{
					Data:   payload.Data,
					MIME:   payload.MIME,
					Width:  size.Width,
					Height: size.Height,
				}}},
				Spacing: docmodel.Spacing{Before: PhotoSpacing},
			},
			&docmodel.Paragraph{
				Runs:    []docmodel.Run{{Text: caption, Italic: true, Size: FontSizeSmall}},
				Spacing: docmodel.Spacing{After: PhotoSpacing},
			},
		)
	}
	return blocks
}
