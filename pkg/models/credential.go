package models

import (
	"encoding/json"
	"errors"
	"fmt"
	"reflect"
)

// ErrUnknownCredentialType is returned for a credential whose type tag is not
// accepted in its position.
var ErrUnknownCredentialType = errors.New("unknown credential type")

type CredentialType string

const (
	CredentialXTwitter CredentialType = "x_twitter"
	CredentialNotion   CredentialType = "notion"
)

// Credential is one external account an agent or location acts through.
type Credential interface {
	CredentialType() CredentialType
}

type XTwitterCredential struct {
	Type     CredentialType `json:"type"`
	Email    string         `json:"email" validate:"utf16max=255"`
	Password string         `json:"password" validate:"utf16max=255"`
	Username string         `json:"username" validate:"utf16max=255"`
}

type NotionCredential struct {
	Type  CredentialType `json:"type"`
	Token string         `json:"token" validate:"utf16max=255"`
}

func (*XTwitterCredential) CredentialType() CredentialType { return CredentialXTwitter }
func (*NotionCredential) CredentialType() CredentialType   { return CredentialNotion }

var (
	agentCredentialVariants = map[string]reflect.Type{
		string(CredentialXTwitter): reflect.TypeOf(XTwitterCredential{}),
		string(CredentialNotion):   reflect.TypeOf(NotionCredential{}),
	}
	locationCredentialVariants = map[string]reflect.Type{
		string(CredentialNotion): reflect.TypeOf(NotionCredential{}),
	}
)

func decodeCredential(data []byte, variants map[string]reflect.Type) (Credential, error) {
	var head struct {
		Type string `json:"type"`
	}
	if err := json.Unmarshal(data, &head); err != nil {
		return nil, err
	}
	t, ok := variants[head.Type]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownCredentialType, head.Type)
	}
	v := reflect.New(t).Interface()
	if err := json.Unmarshal(data, v); err != nil {
		return nil, err
	}
	return v.(Credential), nil
}

// AgentCredential accepts x_twitter and notion credentials.
type AgentCredential struct {
	Credential
}

func (AgentCredential) UnionVariants() map[string]reflect.Type { return agentCredentialVariants }

func (c *AgentCredential) UnmarshalJSON(data []byte) error {
	cred, err := decodeCredential(data, agentCredentialVariants)
	if err != nil {
		return err
	}
	c.Credential = cred
	return nil
}

func (c AgentCredential) MarshalJSON() ([]byte, error) { return json.Marshal(c.Credential) }

// LocationCredential accepts notion credentials.
type LocationCredential struct {
	Credential
}

func (LocationCredential) UnionVariants() map[string]reflect.Type {
	return locationCredentialVariants
}

func (c *LocationCredential) UnmarshalJSON(data []byte) error {
	cred, err := decodeCredential(data, locationCredentialVariants)
	if err != nil {
		return err
	}
	c.Credential = cred
	return nil
}

func (c LocationCredential) MarshalJSON() ([]byte, error) { return json.Marshal(c.Credential) }
