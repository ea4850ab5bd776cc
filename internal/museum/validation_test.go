package museum

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/require"
)

func strPtr(s string) *string { return &s }
func numPtr(f float64) *float64 { return &f }

func TestValidate_AcceptsCompleteBody(t *testing.T) {
	in := &Input{Name: strPtr("Louvre"), AdmissionPrice: numPtr(17), Location: strPtr("Paris")}
	require.NoError(t, Validate(in))
}

func TestValidate_ZeroPriceIsPresent(t *testing.T) {
	in := &Input{Name: strPtr("Tate Modern"), AdmissionPrice: numPtr(0), Location: strPtr("London")}
	require.NoError(t, Validate(in))
}

func TestValidate_ReportsEveryMissingField(t *testing.T) {
	err := Validate(&Input{Name: strPtr("Louvre")})
	require.Error(t, err)

	var verr *ValidationError
	require.True(t, errors.As(err, &verr))
	fields := []string{}
	for _, f := range verr.Fields {
		fields = append(fields, f.Field)
	}
	require.ElementsMatch(t, []string{"admissionPrice", "location"}, fields)
	require.Contains(t, err.Error(), "location is required")
}

func TestValidate_EmptyNameRejected(t *testing.T) {
	err := Validate(&Input{Name: strPtr(""), AdmissionPrice: numPtr(5), Location: strPtr("Oslo")})
	var verr *ValidationError
	require.True(t, errors.As(err, &verr))
	require.Equal(t, "name", verr.Fields[0].Field)
}

func TestValidate_NilInput(t *testing.T) {
	var verr *ValidationError
	require.True(t, errors.As(Validate(nil), &verr))
	require.Len(t, verr.Fields, 3)
}

func TestInput_BodyIDAndMuseum(t *testing.T) {
	in := &Input{
		AltID:          "abc",
		Name:           strPtr("Rijksmuseum"),
		AdmissionPrice: numPtr(22.5),
		Location:       strPtr("Amsterdam"),
		Tours:          []Tour{{TourName: "Night Watch", Duration: 45}},
	}
	require.Equal(t, "abc", in.BodyID())
	in.ID = "def"
	require.Equal(t, "def", in.BodyID())

	m := in.Museum()
	require.Equal(t, "Rijksmuseum", m.Name)
	require.Equal(t, 22.5, m.AdmissionPrice)
	require.Len(t, m.Tours, 1)

	in.Tours[0].TourName = "changed"
	require.Equal(t, "Night Watch", m.Tours[0].TourName)
}
