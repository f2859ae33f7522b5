package main

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/pkg/errors"
	classifier "github.com/techytabbyy/Spam-Classifier"
	"github.com/techytabbyy/Spam-Classifier/model"
)

type modelConfig struct {
	*rootCmdConfig
	treeFile  string
	storeLoc  string
	modelName string
}

func (mc *modelConfig) ValidateSource() error {
	if mc.treeFile == "" && mc.storeLoc == "" {
		return fmt.Errorf("either the tree or the store flag must be set")
	}
	if mc.treeFile != "" && mc.storeLoc != "" {
		return fmt.Errorf("cannot set both tree and store flags at the same time")
	}
	if mc.storeLoc != "" && mc.modelName == "" {
		return fmt.Errorf("required model flag was not set")
	}
	return nil
}

func codecFor(path string) model.Codec {
	if strings.ToLower(filepath.Ext(path)) == ".json" {
		return model.JSONCodec
	}
	return model.TextCodec
}

// loadClassifier reads the classifier from the tree file or the model store.
func (mc *modelConfig) loadClassifier(ctx context.Context) (*classifier.Classifier, error) {
	if mc.storeLoc != "" {
		store := mc.openStore(mc.storeLoc)
		defer store.Close(ctx)
		mc.Logf("Retrieving model %s...", mc.modelName)
		c, err := store.Get(ctx, mc.modelName)
		if err != nil {
			return nil, errors.Wrapf(err, "retrieving model %s", mc.modelName)
		}
		return c, nil
	}
	mc.Logf("Reading tree from %s...", mc.treeFile)
	data, err := os.ReadFile(mc.treeFile)
	if err != nil {
		return nil, errors.Wrapf(err, "reading tree from %s", mc.treeFile)
	}
	c, err := codecFor(mc.treeFile).Decode(data)
	if err != nil {
		return nil, errors.Wrapf(err, "parsing tree from %s", mc.treeFile)
	}
	return c, nil
}

/*
saveClassifier puts the classifier in the model store when one is
configured, or writes it to the given output path (STDOUT if empty)
in JSON if the path ends in .json and in the text format otherwise.
*/
func (mc *modelConfig) saveClassifier(ctx context.Context, c *classifier.Classifier, output string, stdout io.Writer) error {
	if mc.storeLoc != "" {
		store := mc.openStore(mc.storeLoc)
		defer store.Close(ctx)
		mc.Logf("Storing model %s...", mc.modelName)
		return errors.Wrapf(store.Put(ctx, mc.modelName, c), "storing model %s", mc.modelName)
	}
	data, err := codecFor(output).Encode(c)
	if err != nil {
		return err
	}
	if output == "" {
		_, err = io.Copy(stdout, bytes.NewReader(data))
		return err
	}
	f, err := createOutput(output)
	if err != nil {
		return err
	}
	_, err = f.Write(data)
	if cerr := f.Close(); err == nil {
		err = cerr
	}
	return errors.Wrapf(err, "writing tree to %s", output)
}
