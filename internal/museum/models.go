package museum

import (
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Museum is the persistent museum document. ID is assigned by the store on
// creation and never changes afterwards.
type Museum struct {
	ID             primitive.ObjectID `json:"_id" bson:"_id,omitempty" swaggertype:"string" example:"6650c3f2a1b2c3d4e5f60718"`
	Name           string             `json:"name" bson:"name"`
	AdmissionPrice float64            `json:"admissionPrice" bson:"admissionPrice"`
	Location       string             `json:"location" bson:"location"`
	Tours          []Tour             `json:"tours,omitempty" bson:"tours,omitempty"`
}

// Tour is a guided tour owned by a museum. It has no identity of its own.
type Tour struct {
	TourName  string  `json:"tourName,omitempty" bson:"tourName,omitempty"`
	TourGuide string  `json:"tourGuide,omitempty" bson:"tourGuide,omitempty"`
	Duration  float64 `json:"duration,omitempty" bson:"duration,omitempty"`
}

// Clone returns a deep copy so callers never share the Tours backing array.
func (m *Museum) Clone() *Museum {
	if m == nil {
		return nil
	}
	out := *m
	if m.Tours != nil {
		out.Tours = append([]Tour(nil), m.Tours...)
	}
	return &out
}

// Input is the request body accepted on create and update. Pointer fields
// distinguish a missing value from a zero value (an admission price of 0 is
// valid, an absent one is not).
type Input struct {
	ID             string   `json:"_id,omitempty"`
	AltID          string   `json:"id,omitempty"`
	Name           *string  `json:"name" validate:"required,min=1"`
	AdmissionPrice *float64 `json:"admissionPrice" validate:"required"`
	Location       *string  `json:"location" validate:"required,min=1"`
	Tours          []Tour   `json:"tours,omitempty"`
}

// BodyID returns the id carried in the body, if any. "_id" wins over "id".
func (in *Input) BodyID() string {
	if in.ID != "" {
		return in.ID
	}
	return in.AltID
}

// Museum converts a validated input into a document. It must only be called
// after Validate returned nil.
func (in *Input) Museum() *Museum {
	m := &Museum{
		Name:           *in.Name,
		AdmissionPrice: *in.AdmissionPrice,
		Location:       *in.Location,
	}
	if len(in.Tours) > 0 {
		m.Tours = append([]Tour(nil), in.Tours...)
	}
	return m
}
