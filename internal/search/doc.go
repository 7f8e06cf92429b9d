// Package search walks a folder tree and reports files whose name matches a
// glob and whose content contains a text fragment.
//
// Results are produced lazily as an iter.Seq so the caller decides how far the
// walk goes; a Token stops the walk cooperatively between files.
package search
