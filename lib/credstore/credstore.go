package credstore

import (
	"encoding/json"
	"errors"

	"github.com/99designs/keyring"
)

// credstore keeps the JobsEQ username/password in the OS keychain
// so the CLI doesn't need a plaintext config between runs.

const serviceName = "eqlink"
const credentialsKey = "jobseq_credentials"

var ErrNotFound = errors.New("no stored credentials")

type stored struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

func open() (keyring.Keyring, error) {
	return keyring.Open(keyring.Config{
		ServiceName:      serviceName,
		FileDir:          "~/.config/eqlink/keyring",
		FilePasswordFunc: keyring.TerminalPrompt,
	})
}

func Save(username, password string) error {
	ring, err := open()
	if err != nil {
		return err
	}
	data, err := json.Marshal(stored{Username: username, Password: password})
	if err != nil {
		return err
	}
	return ring.Set(keyring.Item{
		Key:   credentialsKey,
		Data:  data,
		Label: "JobsEQ credentials",
	})
}

func Load() (username, password string, err error) {
	ring, err := open()
	if err != nil {
		return "", "", err
	}
	item, err := ring.Get(credentialsKey)
	if errors.Is(err, keyring.ErrKeyNotFound) {
		return "", "", ErrNotFound
	}
	if err != nil {
		return "", "", err
	}
	var s stored
	err = json.Unmarshal(item.Data, &s)
	if err != nil {
		return "", "", err
	}
	return s.Username, s.Password, nil
}

func Clear() error {
	ring, err := open()
	if err != nil {
		return err
	}
	err = ring.Remove(credentialsKey)
	if errors.Is(err, keyring.ErrKeyNotFound) {
		return nil
	}
	return err
}
