// Package pacer spaces out requests to the gallery.
//
// The run controller calls Wait between two listing pages and never after
// the last one. Fixed is the production pacer; Recorder counts calls so tests
// can assert the number of pauses without sleeping.
package pacer
