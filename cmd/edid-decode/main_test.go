package main

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"

	edid "github.com/thyge/edidbase"
	"github.com/thyge/edidbase/pkg/eedid"
)

const testdata = "../../testdata/"

func TestParseDump(t *testing.T) {
	bin, err := os.ReadFile(testdata + "card0-VGA-1")
	require.NoError(t, err)
	text, err := os.ReadFile(testdata + "card0-VGA-1.txt")
	require.NoError(t, err)

	got, err := parseDump("card0-VGA-1", bin)
	require.NoError(t, err)
	assert.Equal(t, bin, got)

	got, err = parseDump("card0-VGA-1.txt", text)
	require.NoError(t, err)
	assert.Equal(t, bin, got)

	// sniffed without an extension
	got, err = parseDump("edid", text)
	require.NoError(t, err)
	assert.Equal(t, bin, got)

	_, err = parseDump("broken.hex", []byte("00 FF F"))
	assert.Error(t, err)
}

func TestLooksLikeHex(t *testing.T) {
	assert.True(t, looksLikeHex([]byte("00 ff\r\n\tAB")))
	assert.False(t, looksLikeHex([]byte("  \n")))
	assert.False(t, looksLikeHex([]byte{0x00, 0xFF}))
	assert.False(t, looksLikeHex([]byte("00 FG")))
}

func TestGetBytesFromString(t *testing.T) {
	b, err := GetBytesFromString("00 FF\r\nff 00\n")
	require.NoError(t, err)
	assert.Equal(t, []byte{0x00, 0xFF, 0xFF, 0x00}, b)
}

func TestReadInputs(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "edid.txt")
	text, err := os.ReadFile(testdata + "card0-VGA-1.txt")
	require.NoError(t, err)
	require.NoError(t, os.WriteFile(path, text, 0o644))

	inputs, err := readInputs([]string{path, testdata + "card0-eDP-1"}, nil)
	require.NoError(t, err)
	require.Len(t, inputs, 2)
	assert.Len(t, inputs[0].Data, edid.BlockSize)
	assert.Len(t, inputs[1].Data, edid.BlockSize)

	_, err = readInputs([]string{filepath.Join(dir, "missing")}, nil)
	assert.Error(t, err)

	// a regular file stands in for a piped stdin
	stdin, err := os.Open(testdata + "card0-eDP-1")
	require.NoError(t, err)
	defer func() {
		_ = stdin.Close()
	}()
	inputs, err = readInputs(nil, stdin)
	require.NoError(t, err)
	require.Len(t, inputs, 1)
	assert.Equal(t, "stdin", inputs[0].Name)
}

func loadInputs(t *testing.T) []input {
	inputs, err := readInputs([]string{testdata + "card0-VGA-1", testdata + "card0-eDP-1"}, nil)
	require.NoError(t, err)
	return inputs
}

func TestDecodeAll(t *testing.T) {
	inputs := loadInputs(t)

	results, err := decodeAll(inputs, false)
	require.NoError(t, err)
	require.Len(t, results, 2)
	first, ok := results[0].EDID.(eedid.EEDID)
	require.True(t, ok)
	assert.Equal(t, edid.ManufacturerID("SAM"), first.Base.Header.Vendor)
	second, ok := results[1].EDID.(eedid.EEDID)
	require.True(t, ok)
	assert.Equal(t, edid.ManufacturerID("SHP"), second.Base.Header.Vendor)

	results, err = decodeAll(inputs, true, edid.WithChecksum())
	require.NoError(t, err)
	_, ok = results[0].EDID.(edid.EDID)
	assert.True(t, ok)

	broken := append(inputs, input{Name: "short", Data: inputs[0].Data[:40]})
	_, err = decodeAll(broken, true)
	require.Error(t, err)
	assert.ErrorIs(t, err, edid.ErrIncomplete)
	assert.Contains(t, err.Error(), "short: ")
}

func TestRender(t *testing.T) {
	results, err := decodeAll(loadInputs(t)[:1], true)
	require.NoError(t, err)

	var buf bytes.Buffer
	require.NoError(t, render(&buf, "json", results))
	var doc map[string]interface{}
	require.NoError(t, json.Unmarshal(buf.Bytes(), &doc))
	header := doc["Header"].(map[string]interface{})
	assert.Equal(t, "SAM", header["Vendor"])
	descriptors := doc["Descriptors"].([]interface{})
	require.Len(t, descriptors, edid.DescriptorCount)
	assert.Equal(t, "Display Product Name", descriptors[2].(map[string]interface{})["Kind"])
	assert.Equal(t, "SyncMaster", descriptors[2].(map[string]interface{})["Text"])

	buf.Reset()
	require.NoError(t, render(&buf, "yaml", results))
	var ydoc map[string]interface{}
	require.NoError(t, yaml.Unmarshal(buf.Bytes(), &ydoc))
	assert.Equal(t, "SAM", ydoc["header"].(map[string]interface{})["vendor"])
	assert.Equal(t, "2aee91a3544c99260f50", ydoc["chromaticity"])

	assert.Error(t, render(&buf, "xml", results))
}
