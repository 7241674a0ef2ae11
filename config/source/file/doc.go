// Package file provides the filesystem Source used by the config package.
//
// A Source answers two questions for the Store: what is the canonical name of a
// configuration file, and what are its current contents. Canonicalization
// checks the file first and only then resolves it, because symlink resolution
// is only meaningful for paths that exist:
//
//	src := file.NewSource()
//	canonical, err := src.Canonical("./config/app.yml")
//	if err != nil {
//	    // missing, a directory, not a regular file, or not readable
//	}
//	data, err := src.ReadFile(canonical)
//
// Error Handling:
//   - Errors include the path for easier debugging
//   - Use errors.Is(err, file.ErrPathIsDirectory) to check for directory errors
//   - Use errors.Is(err, file.ErrNotRegularFile) for devices, sockets and pipes
//   - Use errors.Is(err, fs.ErrNotExist) or fs.ErrPermission for the underlying OS errors
package file
