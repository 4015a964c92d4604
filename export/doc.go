// Package export turns engine traces into documents and writes them to
// sinks: JSON or YAML files for the web visualizer, and a styled console
// renderer for terminals.
//
// A Document carries the trace steps unchanged under the "steps" key, plus
// the node table (index, name, coordinates) and a run identifier so that
// files produced by separate runs can be told apart.
//
// File names follow "<dir>/<algorithm>_trace.<ext>".
//
// Errors:
//
//   - ErrUnknownFormat  for a format other than json or yaml.
//   - ErrEmptyTrace     when asked to export a trace with no steps.
package export
