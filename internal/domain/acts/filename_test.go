package acts

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFileName(t *testing.T) {
	tests := []struct {
		name string
		in   *ActInput
		ext  string
		want string
	}{
		{
			name: "sdacha by surrenderer initials",
			in:   &ActInput{ActType: ActSdacha, ActNumber: "12", SurrendererLastNameInitials: "Петров И.С."},
			ext:  "docx",
			want: "акт_сдачи_ноутбука_Петров_№12.docx",
		},
		{
			name: "vydacha by receiver",
			in:   &ActInput{ActType: ActVydacha, ReceiverLastNameInitials: "Ким О.П.", SurrendererLastNameInitials: "Петров И.С."},
			ext:  ".pdf",
			want: "акт_выдачи_ноутбука_Ким.pdf",
		},
		{
			name: "label when initials missing",
			in:   &ActInput{ActType: ActSdacha, SurrendererLabel: "рядовой Петров И.С."},
			ext:  "docx",
			want: "акт_сдачи_ноутбука_рядовой.docx",
		},
		{
			name: "default token",
			in:   &ActInput{ActType: ActVydacha, ReceiverLastNameInitials: "Ли"},
			ext:  "docx",
			want: "акт_выдачи_ноутбука_документ.docx",
		},
		{
			name: "unsafe characters",
			in:   &ActInput{ActType: ActSdacha, ActNumber: "5/2 б", SurrendererLastNameInitials: "Петров"},
			ext:  "docx",
			want: "акт_сдачи_ноутбука_Петров_№5_2_б.docx",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, FileName(tt.in, tt.ext))
		})
	}
}
