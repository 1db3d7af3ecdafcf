package ldbcore

import "testing"

func TestDefaultOptions(t *testing.T) {
	opts := DefaultOptions()

	if opts.Comparator != nil {
		t.Error("default Comparator should be nil (implies BytewiseComparator)")
	}
	if opts.CreateIfMissing {
		t.Error("default CreateIfMissing should be false")
	}
	if opts.WriteBufferSize != 4*1024*1024 {
		t.Errorf("default WriteBufferSize = %d, want 4MiB", opts.WriteBufferSize)
	}
	if opts.MaxOpenFiles != 1000 {
		t.Errorf("default MaxOpenFiles = %d, want 1000", opts.MaxOpenFiles)
	}
	if opts.BlockSize != 4096 {
		t.Errorf("default BlockSize = %d, want 4096", opts.BlockSize)
	}
	if opts.BlockRestartInterval != 16 {
		t.Errorf("default BlockRestartInterval = %d, want 16", opts.BlockRestartInterval)
	}
	if opts.MaxFileSize != 2*1024*1024 {
		t.Errorf("default MaxFileSize = %d, want 2MiB", opts.MaxFileSize)
	}
	if opts.Compression != CompressionSnappy {
		t.Errorf("default Compression = %v, want Snappy", opts.Compression)
	}
	if opts.ZstdCompressionLevel != 1 {
		t.Errorf("default ZstdCompressionLevel = %d, want 1", opts.ZstdCompressionLevel)
	}
	if opts.ReuseLogs {
		t.Error("default ReuseLogs should be false")
	}
	if opts.BlockCache != nil {
		t.Error("default BlockCache should be nil")
	}
	if opts.FilterPolicy != nil {
		t.Error("default FilterPolicy should be nil")
	}
}

func TestDefaultReadOptions(t *testing.T) {
	opts := DefaultReadOptions()

	if opts.VerifyChecksums {
		t.Error("default VerifyChecksums should be false")
	}
	if !opts.FillCache {
		t.Error("default FillCache should be true")
	}
	if opts.Snapshot != nil {
		t.Error("default Snapshot should be nil")
	}
}

func TestDefaultWriteOptions(t *testing.T) {
	opts := DefaultWriteOptions()

	if opts.Sync {
		t.Error("default Sync should be false")
	}
}
