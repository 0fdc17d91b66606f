package main

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"gopkg.in/yaml.v3"

	"github.com/etru/helpers"
	"github.com/etru/helpers/base7"
)

func TestMain(m *testing.M) {
	goleak.VerifyTestMain(m)
}

// run executes the CLI with args and returns its standard output.
func run(t *testing.T, args ...string) (string, error) {
	t.Helper()
	t.Setenv("ETRU_LOG_LEVEL", "error")
	t.Cleanup(func() { logger = zap.NewNop() })

	var out bytes.Buffer
	cmd := newRootCmd()
	cmd.SetOut(&out)
	cmd.SetErr(&bytes.Buffer{})
	cmd.SetArgs(args)
	err := execute(cmd)
	return out.String(), err
}

func TestEgcdCmd(t *testing.T) {
	out, err := run(t, "egcd", "35", "15")
	require.NoError(t, err)
	assert.Equal(t, "5 1 -2\n", out)

	_, err = run(t, "egcd", "0", "0")
	assert.ErrorIs(t, err, helpers.ErrDomain)

	_, err = run(t, "egcd", "1", "x")
	assert.ErrorIs(t, err, helpers.ErrParse)
}

func TestPrimeCmd(t *testing.T) {
	out, err := run(t, "prime", "0", "1", "2", "4", "17")
	require.NoError(t, err)
	assert.Equal(t, "0 false\n1 false\n2 true\n4 false\n17 true\n", out)

	out, err = run(t, "prime", "--legacy", "0", "1", "4")
	require.NoError(t, err)
	assert.Equal(t, "0 true\n1 true\n4 false\n", out)

	t.Setenv("ETRU_PRIME_POLICY", "legacy")
	out, err = run(t, "prime", "1")
	require.NoError(t, err)
	assert.Equal(t, "1 true\n", out)
}

func TestEisensteinPrimeCmd(t *testing.T) {
	out, err := run(t, "eprime", "5", "17")
	require.NoError(t, err)
	assert.Equal(t, "5+17ω true\n", out)

	out, err = run(t, "eprime", "1", "0")
	require.NoError(t, err)
	assert.Equal(t, "1+0ω false\n", out)

	out, err = run(t, "eprime", "--legacy", "1", "0")
	require.NoError(t, err)
	assert.Equal(t, "1+0ω true\n", out)

	t.Setenv("ETRU_PRIME_POLICY", "legacy")
	out, err = run(t, "eprime", "1", "0")
	require.NoError(t, err)
	assert.Equal(t, "1+0ω true\n", out)
}

func TestConvertCmds(t *testing.T) {
	out, err := run(t, "to7", "--", "100", "-8", "0")
	require.NoError(t, err)
	assert.Equal(t, "202\n-11\n0\n", out)

	out, err = run(t, "from7", "-j", "1", "--", "202", "-11")
	require.NoError(t, err)
	assert.Equal(t, "100\n-8\n", out)

	_, err = run(t, "from7", "202", "17")
	assert.ErrorIs(t, err, helpers.ErrParse)
	assert.Contains(t, err.Error(), "17")
}

func TestConvertManyKeepsOrder(t *testing.T) {
	args := []string{"to7", "-j", "3"}
	var want strings.Builder
	for i := 0; i < 50; i++ {
		n := strings.Repeat("9", i+1)
		args = append(args, n)
		s7, err := run(t, "to7", n)
		require.NoError(t, err)
		want.WriteString(s7)
	}

	out, err := run(t, args...)
	require.NoError(t, err)
	assert.Equal(t, want.String(), out)
}

func TestMessageCmds(t *testing.T) {
	enc, err := run(t, "encode", "I", "am", "Maozihao")
	require.NoError(t, err)

	dec, err := run(t, "decode", strings.TrimSpace(enc))
	require.NoError(t, err)
	assert.Equal(t, "I am Maozihao\n", dec)

	_, err = run(t, "encode", "--max-digits", "3", "AB")
	assert.ErrorIs(t, err, helpers.ErrDomain)

	t.Setenv("ETRU_MAX_DIGITS", "3")
	_, err = run(t, "encode", "AB")
	assert.ErrorIs(t, err, helpers.ErrDomain)
	_, err = run(t, "encode", "--max-digits", "0", "AB")
	assert.NoError(t, err)
}

func TestEncodeRing(t *testing.T) {
	// "A" encodes as 122
	out, err := run(t, "encode", "--ring", "A")
	require.NoError(t, err)
	assert.Equal(t, "1+0ω -1+0ω -1+0ω\n", out)

	out, err = run(t, "-o", "json", "encode", "--ring", "A")
	require.NoError(t, err)
	var es []base7.Element
	require.NoError(t, json.Unmarshal([]byte(out), &es))
	assert.Equal(t, []base7.Element{{X: 1}, {X: -1}, {X: -1}}, es)
}

// syncRecorder is a zap sink that counts flushes.
type syncRecorder struct {
	bytes.Buffer
	syncs int
}

func (s *syncRecorder) Sync() error {
	s.syncs++
	return nil
}

func TestLoggerSyncedOnFailure(t *testing.T) {
	sink := &syncRecorder{}
	prev := buildLogger
	buildLogger = func(zc zap.Config) (*zap.Logger, error) {
		return zap.New(zapcore.NewCore(zapcore.NewJSONEncoder(zc.EncoderConfig), sink, zc.Level)), nil
	}
	t.Cleanup(func() { buildLogger = prev })

	_, err := run(t, "egcd", "0", "0")
	require.ErrorIs(t, err, helpers.ErrDomain)
	assert.Equal(t, 1, sink.syncs)

	_, err = run(t, "egcd", "35", "15")
	require.NoError(t, err)
	assert.Equal(t, 2, sink.syncs)
}

func TestOutputFormats(t *testing.T) {
	out, err := run(t, "-o", "json", "egcd", "35", "15")
	require.NoError(t, err)
	var b bezout
	require.NoError(t, json.Unmarshal([]byte(out), &b))
	assert.Equal(t, bezout{A: 35, B: 15, G: 5, X: 1, Y: -2}, b)

	t.Setenv("ETRU_OUTPUT", "yaml")
	out, err = run(t, "to7", "100")
	require.NoError(t, err)
	var cs []conversion
	require.NoError(t, yaml.Unmarshal([]byte(out), &cs))
	assert.Equal(t, []conversion{{Input: "100", Output: "202"}}, cs)

	_, err = run(t, "-o", "xml", "to7", "1")
	assert.Error(t, err)
}

func TestMapAllStopsOnError(t *testing.T) {
	boom := errors.New("boom")
	_, err := mapAll(context.Background(), []string{"a", "b", "c"}, 2, func(s string) (int, error) {
		if s == "b" {
			return 0, boom
		}
		return len(s), nil
	})
	require.ErrorIs(t, err, boom)
	assert.Equal(t, "b: boom", err.Error())
}
