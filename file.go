// Copyright 2018 Saferwall. All rights reserved.
// Use of this source code is governed by Apache v2 license
// license that can be found in the LICENSE file.

package dwg

import (
	"os"

	mmap "github.com/edsrzf/mmap-go"
	"github.com/saferwall/dwg/internal/log"
)

// File represents an open DWG drawing container.
type File struct {
	*Document
	data mmap.MMap
	size uint32
	f    *os.File
	opts *Options

	logger *log.Helper
}

// Options configures parsing.
type Options struct {
	// Strict aborts Parse on the first hard error instead of recording it
	// as an Anomaly and returning whatever was recovered, by default (false).
	Strict bool

	// SkipHandleResolution leaves every Reference unbound, by default
	// (false); use when only the raw object set is needed.
	SkipHandleResolution bool

	// A custom logger.
	Logger log.Logger
}

// New instantiates a File given a path on disk, memory-mapped for reading.
func New(name string, opts *Options) (*File, error) {
	f, err := os.Open(name)
	if err != nil {
		return nil, err
	}

	data, err := mmap.Map(f, mmap.RDONLY, 0)
	if err != nil {
		f.Close()
		return nil, err
	}

	file := newFile(opts)
	file.data = data
	file.size = uint32(len(data))
	file.f = f
	return file, nil
}

// NewBytes instantiates a File given an in-memory buffer.
func NewBytes(data []byte, opts *Options) (*File, error) {
	file := newFile(opts)
	file.data = data
	file.size = uint32(len(data))
	return file, nil
}

func newFile(opts *Options) *File {
	file := &File{}
	if opts != nil {
		file.opts = opts
	} else {
		file.opts = &Options{}
	}

	var logger log.Logger
	if file.opts.Logger == nil {
		logger = log.NewStdLogger(os.Stdout)
		file.logger = log.NewHelper(log.NewFilter(logger, log.FilterLevel(log.LevelError)))
	} else {
		file.logger = log.NewHelper(file.opts.Logger)
	}
	return file
}

// Close releases the memory-mapped file, if any.
func (f *File) Close() error {
	if f.data != nil {
		_ = f.data.Unmap()
	}
	if f.f != nil {
		return f.f.Close()
	}
	return nil
}

// Parse decodes the drawing: version detection, archive-layout dispatch,
// object decoding, and handle resolution. A failure in any one object or
// section degrades to an Anomaly rather than aborting the whole decode
// unless Options.Strict is set; version-detection and unsupported-layout
// errors are always returned directly since no partial document follows
// from them.
func (f *File) Parse() error {
	doc, err := decodeDocument(f.data, f.logger, f.opts)
	f.Document = doc
	if err == nil {
		return nil
	}

	if dwgErr, ok := err.(*Error); ok {
		switch dwgErr.Kind {
		case KindUnsupportedVersion, KindUnsupported:
			return err
		}
	}
	if f.opts.Strict || doc == nil {
		return err
	}
	doc.addAnomaly(err.Error())
	return nil
}
