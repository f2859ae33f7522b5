/*
Package yaml provides methods to parse the options that describe how
texts become feature vectors, also known as metadata, from YAML
documents.
*/
package yaml

import (
	"io/ioutil"

	"github.com/pkg/errors"
	"github.com/techytabbyy/Spam-Classifier/feature/text"
	yaml "gopkg.in/yaml.v2"
)

/*
ReadOptions takes a slice of bytes with a vectorizer definition in
YML and returns the text.Options parsed from it or an error.
The YML is expected to be an object containing a vectorizer property,
an object with any of the following properties:
  * lowercase: a boolean
  * stopwords: the language code of the stop words to remove
  * stem: a boolean
  * min_length: a non-negative integer
Properties not given take their value from text.DefaultOptions.
*/
func ReadOptions(md []byte) (text.Options, error) {
	keys := map[string]interface{}{}
	err := yaml.Unmarshal(md, &keys)
	if err != nil {
		return text.Options{}, errors.Wrap(err, "parsing yml metadata")
	}
	if _, ok := keys["vectorizer"]; !ok {
		return text.Options{}, errors.New("metadata has no vectorizer information")
	}
	metadata := struct {
		Vectorizer *text.Options `yaml:"vectorizer"`
	}{}
	o := text.DefaultOptions
	metadata.Vectorizer = &o
	err = yaml.UnmarshalStrict(md, &metadata)
	if err != nil {
		return text.Options{}, errors.Wrap(err, "parsing yml metadata")
	}
	if metadata.Vectorizer == nil {
		return text.Options{}, errors.New("metadata has no vectorizer information")
	}
	if metadata.Vectorizer.MinLength < 0 {
		return text.Options{}, errors.Errorf("invalid negative min_length %d", metadata.Vectorizer.MinLength)
	}
	return *metadata.Vectorizer, nil
}

/*
ReadOptionsFromFile takes a filepath string, reads its contents and uses
ReadOptions to parse it and return the text.Options or an error.
If the file indicated by the filepath cannot be opened for reading an error
will be returned.
*/
func ReadOptionsFromFile(filepath string) (text.Options, error) {
	md, err := ioutil.ReadFile(filepath)
	if err != nil {
		return text.Options{}, errors.Wrapf(err, "reading metadata yml file %s", filepath)
	}
	o, err := ReadOptions(md)
	if err != nil {
		err = errors.Wrapf(err, "parsing metadata yml file %s", filepath)
	}
	return o, err
}

/*
WriteOptions takes text.Options and returns them as a YML metadata
document that ReadOptions can parse.
*/
func WriteOptions(o text.Options) ([]byte, error) {
	return yaml.Marshal(struct {
		Vectorizer text.Options `yaml:"vectorizer"`
	}{o})
}
