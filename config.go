package main

import (
	"encoding/json"
	"errors"
	"io"
	"log"
	"os"
	"path/filepath"
)

type Config struct {
	// DictPath is the custom-word dictionary file the editor owns while open.
	DictPath string `json:"dict_path"`
	// ReloadCommand is run after the editor closes so the host input method
	// reloads its root-key data. Empty means no host to notify.
	ReloadCommand []string `json:"reload_command"`
}

func NewConfig() Config {
	return Config{
		DictPath:      filepath.Join(configDir(), "custom.json"),
		ReloadCommand: []string{},
	}
}

func configDir() string {
	d, err := os.UserHomeDir()
	if err != nil {
		d = "."
	}
	return filepath.Join(d, ".config", "rootdict")
}

func GetConfigPath() string {
	return filepath.Join(configDir(), "config.json")
}

func CreateDefaultConfig() (Config, error) {
	config := NewConfig()

	configPath := GetConfigPath()

	err := os.MkdirAll(filepath.Dir(configPath), 0755)
	if err != nil {
		return Config{}, err
	}

	file, err := os.Create(configPath)
	if err != nil {
		return Config{}, err
	}

	defer file.Close()

	s, err := json.MarshalIndent(config, "", "  ")
	if err != nil {
		return Config{}, err
	}

	file.Write(s)
	return config, nil
}

func GetConfig() (Config, error) {
	configPath := GetConfigPath()
	configFile, err := os.Open(configPath)

	if errors.Is(err, os.ErrNotExist) {
		c, err := CreateDefaultConfig()
		if err != nil {
			log.Fatal(err)
		}
		return c, nil
	}

	if err != nil {
		return Config{}, err
	}

	defer configFile.Close()

	byteValue, _ := io.ReadAll(configFile)
	var config Config

	err = json.Unmarshal(byteValue, &config)

	if err != nil {
		return Config{}, err
	}

	return config, nil
}
