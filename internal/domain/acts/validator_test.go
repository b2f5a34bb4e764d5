package acts

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"acts-service-go/internal/pkg/textutil"
)

func TestValidator_Valid(t *testing.T) {
	v := NewValidator()
	assert.NoError(t, v.Validate(sampleInput()))

	in := sampleInput()
	in.ActType = ActVydacha
	in.Issuer = &textutil.Person{FullName: "Сидоренко Павел Олегович"}
	assert.NoError(t, v.Validate(in))
}

func TestValidator_Errors(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(in *ActInput)
		wantMsg []string
	}{
		{
			name:    "no kit items",
			mutate:  func(in *ActInput) { in.KitItems = nil },
			wantMsg: []string{ErrNoKitItems.Error()},
		},
		{
			name: "bad kit item",
			mutate: func(in *ActInput) {
				in.KitItems[1].Condition = "broken"
				in.KitItems[2].Name = "  "
			},
			wantMsg: []string{`kitItems[1].condition: invalid value "broken"`, "kitItems[2].name is required"},
		},
		{
			name:    "year",
			mutate:  func(in *ActInput) { in.Year = "26" },
			wantMsg: []string{"year must be a four-digit year"},
		},
		{
			name:    "act type",
			mutate:  func(in *ActInput) { in.ActType = "priem" },
			wantMsg: []string{"actType must be one of [sdacha vydacha]"},
		},
		{
			name:    "receiver",
			mutate:  func(in *ActInput) { in.Receiver = nil },
			wantMsg: []string{ErrMissingReceiver.Error()},
		},
		{
			name:    "surrenderer",
			mutate:  func(in *ActInput) { in.Surrenderer = &textutil.Person{} },
			wantMsg: []string{ErrMissingSurrenderer.Error()},
		},
		{
			name:    "issuer",
			mutate:  func(in *ActInput) { in.ActType = ActVydacha },
			wantMsg: []string{ErrMissingIssuer.Error()},
		},
		{
			name: "too many photos",
			mutate: func(in *ActInput) {
				in.Photos = make([]Photo, 21)
			},
			wantMsg: []string{"photos must be at most 20 long"},
		},
		{
			name:    "too long",
			mutate:  func(in *ActInput) { in.Defects = strings.Repeat("я", 2001) },
			wantMsg: []string{"defects must be at most 2000 long"},
		},
	}

	v := NewValidator()
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			in := sampleInput()
			tt.mutate(in)

			err := v.Validate(in)
			require.Error(t, err)
			assert.ErrorIs(t, err, ErrInvalidInput)
			assert.Contains(t, err.Error(), "validation failed: ")
			for _, msg := range tt.wantMsg {
				assert.Contains(t, err.Error(), msg)
			}
		})
	}
}

// Битые фотографии отбрасываются при сборке, а не при проверке
func TestValidator_MalformedPhotoAccepted(t *testing.T) {
	in := sampleInput()
	in.Photos = []Photo{{DataURL: "blob:http://host/abc"}, {DataURL: "http://example.com/a.png"}}
	assert.NoError(t, NewValidator().Validate(in))
}

func TestValidator_AggregatesErrors(t *testing.T) {
	in := sampleInput()
	in.KitItems = nil
	in.Year = ""
	in.Receiver = nil

	err := NewValidator().Validate(in)
	require.Error(t, err)
	assert.Equal(t, 2, strings.Count(err.Error(), "; "))
	assert.NotContains(t, err.Error(), "kitItems is required")
}

func TestValidator_Nil(t *testing.T) {
	assert.ErrorIs(t, NewValidator().Validate(nil), ErrInvalidInput)
}
