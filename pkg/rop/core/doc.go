// Package core contains pipeline plumbing utilities: channel helpers, worker
// configuration via context, and the locomotive that drives stages. It does
// not define business logic; instead it provides the scaffolding for package
// lite to run pipelines with controlled concurrency.
//
// Each value pulled by a locomotive is one unit of work. A fault raised while
// processing it ends that unit only; the signal is handed to OnFault and the
// worker moves on. Faults are never turned into failure results.
package core
