// Package log provides leveled, colored console logging for the reference API.
//
// Four levels are supported: DEBUG (only in verbose mode), INFO, WARN and
// ERROR. ERROR lines go to the error writer, everything else to the regular
// writer unless SetForceStdErr is enabled.
//
//	log.Infof("Listening on %s", addr)
//	log.SetVerbose(true)
//	log.Debugf("Loaded %d records", n)
//
// Writers can be swapped with SetOutput, which tests use to capture output.
// All functions are safe for concurrent use.
package log
