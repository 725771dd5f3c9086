package domain

// Model é o artefato treinado usado para prever a receita.
// Após carregado é somente leitura e pode ser compartilhado entre goroutines.
type Model interface {
	Predict(features FeatureVector) (float64, error)
	RequiredFeatures() []FeatureName
	Version() string
}
