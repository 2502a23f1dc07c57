package ai

import "context"

// ChatModel is the completion collaborator: prompt in, text out. Concrete
// providers live in subpackages so the domain never sees a vendor type.
type ChatModel interface {
	Complete(ctx context.Context, systemPrompt, userMessage string) (string, error)
}

// Prediction is the result of classifying an uploaded image.
type Prediction struct {
	PredictedPlace string  `json:"predicted_place"`
	Confidence     float64 `json:"confidence"`
}

// Classifier is the image-recognition collaborator: image bytes in, label
// plus confidence out.
type Classifier interface {
	Classify(ctx context.Context, image []byte, filename string) (Prediction, error)
}
