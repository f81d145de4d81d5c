package resources

import (
	"embed"
	"fmt"
	"sync"

	"fyne.io/fyne/v2"
)

const (
	logoDir           = "logo/"
	countdownDocument = "config/countdown.yaml"
)

//go:embed logo/*.svg
var logoFS embed.FS

//go:embed config/countdown.yaml
var configFS embed.FS

var logoCache sync.Map

// Logo returns a Fyne resource for the given logo file.
func Logo(fileName string) (fyne.Resource, error) {
	if cached, ok := logoCache.Load(fileName); ok {
		return cached.(fyne.Resource), nil
	}

	path := logoDir + fileName
	data, err := logoFS.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("load resource %s: %w", path, err)
	}

	resource := fyne.NewStaticResource(fileName, data)
	logoCache.Store(fileName, resource)
	return resource, nil
}

// MustLogo returns a Fyne resource or panics on error.
func MustLogo(fileName string) fyne.Resource {
	resource, err := Logo(fileName)
	if err != nil {
		panic(err)
	}
	return resource
}

// CountdownDocument returns the embedded countdown YAML.
func CountdownDocument() []byte {
	data, err := configFS.ReadFile(countdownDocument)
	if err != nil {
		panic(fmt.Errorf("load resource %s: %w", countdownDocument, err))
	}
	return data
}
