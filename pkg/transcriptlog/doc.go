// Package transcriptlog appends timestamped transcript entries to plain-text
// log files without ever rewriting what is already there.
//
// Quick start:
//
//	path, err := transcriptlog.AppendEntry("Hello world")
//	if err != nil {
//	    log.Fatal(err)
//	}
//	fmt.Println(path) // out/2025-10-23.txt
//
// Each call writes one block to the file named by the strftime pattern:
//
//	[2025-10-23 14:03:07]
//	Hello world
//
// The header and the file name come from the same captured instant. Use
// WithMode(ModeNewFile) with a pattern such as PerRunPattern for one file per
// call instead of one growing file per day.
//
// A Logger keeps no open files between calls and is safe for concurrent use,
// including from several processes writing the same file.
package transcriptlog
