// Package resources locates and opens configuration and mapping resources.
//
// A Resolver searches an ordered list of loaders: the loader passed by the
// caller, the active default loader, and finally the system loader rooted at
// the working directory. Each loader is asked for the name as given and then
// for the name with a leading "/", since loaders disagree on whether resource
// paths are rooted. Only the last failure is reported, as a
// RESOURCE_NOT_FOUND error.
//
// Loaders are small adapters over a storage backend:
//
//   - FSLoader serves files from a go-billy filesystem (a directory on disk
//     or an in-memory tree).
//   - IOFSLoader serves files from an io/fs.FS such as embed.FS.
//   - The resources/minio package serves objects from an S3 bucket.
//
// Loaders may also resolve type names through a TypeRegistry, which backs
// Resolver.TypeForName.
//
// Basic usage:
//
//	r := resources.New(resources.WithLoader(resources.NewMemoryLoader()))
//	props, err := r.Properties(nil, "cfg/app.properties")
//	if err != nil {
//	    if errors.IsKind(err, errors.KindResourceNotFound) {
//	        // fall back to built-in settings
//	    }
//	    return err
//	}
//
// The default loader and charset of a Resolver are shared by every goroutine
// using it. Updates are atomic and the last writer wins; callers that need a
// stable view across several calls should read the values once and pass the
// loader explicitly.
package resources
