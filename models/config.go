package models

// SecretDeletionPolicy controls whether removing an authentication session
// also deletes the backing secret.
type SecretDeletionPolicy string

const (
	DeleteSecretAlways SecretDeletionPolicy = "always"
	DeleteSecretNever  SecretDeletionPolicy = "never"
	DeleteSecretAsk    SecretDeletionPolicy = "ask"
)

// ConnectorConfig is the root of a connector.yaml file at one scope.
type ConnectorConfig struct {
	Servers        []ServerDefinition   `json:"servers" yaml:"servers"`
	SecretDeletion SecretDeletionPolicy `json:"secretDeletion,omitempty" yaml:"secretDeletion,omitempty"`
}
