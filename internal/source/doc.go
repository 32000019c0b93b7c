// Package source reads the input text file and the optional filter file.
//
// It is the I/O boundary for the wordfreq core. ReadLines loads a whole
// file, decodes it with a named text encoding and splits it into lines with
// universal newline handling. LoadFilterSet loads the word filter.
//
// Failures fall into two classes:
//   - ResourceError (ErrResourceUnavailable): the file could not be opened
//     or read. The run should abort.
//   - DecodeError (ErrDecoding) and ErrUnknownEncoding: the bytes could not
//     be decoded with the requested encoding. The caller may ask for another
//     encoding and call ReadLines again. IsDecodingFailure reports this class.
package source
