package assessment

import (
	"encoding/json"
	"io/ioutil"
	"path/filepath"
	"strings"

	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"
)

//
// LoadFile reads an exported assessment ({responses, notes, orgInfo,
// targetLevel}) from a .json, .yaml or .yml file, applies the same
// validation the API does, and returns the normalized Assessment
// together with the JSON form of the document.
//
func LoadFile(path string) (Assessment, []byte, error) {
	data, err := ioutil.ReadFile(path)
	if err != nil {
		return Assessment{}, nil, errors.Wrap(err, "cannot read assessment file")
	}

	body := data
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		body, err = yamlToJSON(data)
		if err != nil {
			return Assessment{}, nil, errors.Wrapf(err, "cannot parse %s", path)
		}
	}

	if err := ValidateDocument(body, false); err != nil {
		return Assessment{}, nil, errors.Wrapf(err, "invalid assessment %s", path)
	}
	return Parse(body), body, nil
}

// yamlToJSON re-encodes a YAML document as JSON.
func yamlToJSON(data []byte) ([]byte, error) {
	var doc interface{}
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, errors.Wrap(err, "yaml unmarshal")
	}
	if doc == nil {
		return []byte("{}"), nil
	}
	b, err := json.Marshal(doc)
	if err != nil {
		return nil, errors.Wrap(err, "yaml document is not representable as json")
	}
	return b, nil
}
