package errcode

import (
	"github.com/gnames/gn"
)

const (
	UnknownError gn.ErrorCode = iota

	// File System errors
	CreateDirError
	CopyFileError
	ReadFileError
	WriteFileError

	// Logging errors
	CreateLogFileError

	// Sources errors
	SourcesConfigError
	SourcesNotFoundError

	// Manifest errors
	ManifestReadError
	ManifestWriteError

	// Download errors
	DownloadFetchError
	DownloadStatusError
	DownloadWriteError

	// Process errors
	ProcessRawFileError
	ProcessSchemaError
	ProcessParseError
	ProcessPublishError
	ProcessCancelledError

	// Database errors
	DBConnectionError
	DBNotConnectedError
	DBSchemaError
	DBLoadError

	// Schema errors
	SchemaGORMConnectionError
	SchemaMigrateError
	SchemaCollationError
	SchemaAnalyzeError
)
