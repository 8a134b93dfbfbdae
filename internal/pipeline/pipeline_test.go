package pipeline

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Hemanth4041/statement-loader/internal/bai2"
	"github.com/Hemanth4041/statement-loader/internal/baiparser"
	"github.com/Hemanth4041/statement-loader/internal/crypto"
	"github.com/Hemanth4041/statement-loader/internal/models"
	"github.com/Hemanth4041/statement-loader/internal/store"
	"github.com/Hemanth4041/statement-loader/internal/validation"
)

func sampleBAI() string {
	return strings.Join([]string{
		"01,SENDER,RECEIVER,210706,2400,1,80,10,2/",
		"02,RECEIVER,032001,1,210706,2400,AUD,2/",
		"03,12345678,AUD,010,100000,,,015,90000,,/",
		"16,399,2500,,BANKREF,,Payment for services/",
		"49,192500,3/",
		"98,192500,1,5/",
		"99,192500,1,7/",
	}, "\n")
}

func testDirs(t *testing.T) Directories {
	t.Helper()
	base := t.TempDir()
	dirs := Directories{
		Pending: filepath.Join(base, "pending"),
		Archive: filepath.Join(base, "archive"),
		Error:   filepath.Join(base, "error"),
	}
	require.NoError(t, os.MkdirAll(dirs.Pending, 0755))
	return dirs
}

func testPipeline(t *testing.T, tracker *store.MockStatusTracker, loader *store.MockLoader) *Pipeline {
	t.Helper()
	encryptor, err := crypto.NewFieldEncryptor([]byte("test master key"))
	require.NoError(t, err)

	return &Pipeline{
		Identity:     models.Identity{OrganisationID: "org-1", BankID: "WBC"},
		Mapping:      baiparser.DefaultMapping(),
		ParseOptions: bai2.DefaultParseOptions(),
		Schema:       validation.DefaultSchema(),
		Encryptor:    encryptor,
		Tracker:      tracker,
		Loader:       loader,
	}
}

func TestProcessFileSuccess(t *testing.T) {
	dirs := testDirs(t)
	path := filepath.Join(dirs.Pending, "statement.bai")
	require.NoError(t, os.WriteFile(path, []byte(sampleBAI()), 0600))

	tracker := store.NewMockStatusTracker()
	loader := &store.MockLoader{}
	p := testPipeline(t, tracker, loader)

	result := p.ProcessFile(context.Background(), path, dirs)

	assert.Equal(t, store.StatusSuccess, result.Status)
	assert.Equal(t, FileTypeBAI, result.FileType)
	assert.NoError(t, result.Err)
	assert.Equal(t, 1, result.Balances)
	assert.Equal(t, 1, result.Transactions)
	assert.Equal(t, filepath.Join(dirs.Archive, "statement.bai"), result.MovedTo)
	assert.FileExists(t, result.MovedTo)
	assert.NoFileExists(t, path)

	assert.Equal(t, []string{"statement.bai"}, tracker.Processing)
	assert.Equal(t, []string{"statement.bai"}, tracker.Succeeded)
	require.Len(t, loader.Loaded, 1)

	// Sensitive fields were encrypted before the load.
	assert.NotEqual(t, "12345678", loader.Loaded[0].Transactions[0].AccountNumber)
}

func TestProcessFileParseFailure(t *testing.T) {
	dirs := testDirs(t)
	path := filepath.Join(dirs.Pending, "broken.bai")
	require.NoError(t, os.WriteFile(path, []byte("01,SENDER,RECEIVER/\n99,0,1,2/\nnonsense"), 0600))

	tracker := store.NewMockStatusTracker()
	loader := &store.MockLoader{}
	p := testPipeline(t, tracker, loader)

	result := p.ProcessFile(context.Background(), path, dirs)

	assert.Equal(t, store.StatusFailed, result.Status)
	assert.Error(t, result.Err)
	assert.Equal(t, filepath.Join(dirs.Error, "broken.bai"), result.MovedTo)
	assert.FileExists(t, result.MovedTo)
	assert.Empty(t, loader.Loaded)
	assert.Contains(t, tracker.Failed, "broken.bai")
}

func TestProcessFileUnsupportedType(t *testing.T) {
	dirs := testDirs(t)
	path := filepath.Join(dirs.Pending, "statement.pdf")
	require.NoError(t, os.WriteFile(path, []byte("%PDF-1.4"), 0600))

	tracker := store.NewMockStatusTracker()
	p := testPipeline(t, tracker, &store.MockLoader{})

	result := p.ProcessFile(context.Background(), path, dirs)

	assert.Equal(t, store.StatusFailed, result.Status)
	assert.Contains(t, result.Err.Error(), "unsupported file type")
	assert.FileExists(t, filepath.Join(dirs.Error, "statement.pdf"))
}

func TestProcessPending(t *testing.T) {
	dirs := testDirs(t)
	require.NoError(t, os.WriteFile(filepath.Join(dirs.Pending, "good.bai"), []byte(sampleBAI()), 0600))
	require.NoError(t, os.WriteFile(filepath.Join(dirs.Pending, "bad.bai"), []byte("garbage"), 0600))

	tracker := store.NewMockStatusTracker()
	loader := &store.MockLoader{}
	p := testPipeline(t, tracker, loader)

	results, err := p.ProcessPending(context.Background(), dirs)
	require.NoError(t, err)
	require.Len(t, results, 2)

	byStatus := map[string]int{}
	for _, r := range results {
		byStatus[r.Status]++
	}
	assert.Equal(t, 1, byStatus[store.StatusSuccess])
	assert.Equal(t, 1, byStatus[store.StatusFailed])
	assert.Len(t, loader.Loaded, 1)
}

func TestProcessFileWithoutEncryptor(t *testing.T) {
	dirs := testDirs(t)
	path := filepath.Join(dirs.Pending, "statement.bai")
	require.NoError(t, os.WriteFile(path, []byte(sampleBAI()), 0600))

	loader := &store.MockLoader{}
	p := testPipeline(t, store.NewMockStatusTracker(), loader)
	p.Encryptor = nil

	result := p.ProcessFile(context.Background(), path, dirs)
	require.Equal(t, store.StatusSuccess, result.Status)
	assert.Equal(t, "12345678", loader.Loaded[0].Transactions[0].AccountNumber)
}
