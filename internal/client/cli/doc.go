// Package cli provides the interactive field client.
//
// It wires configuration, the local draft queue, the record server client,
// object storage and the sync engine, then runs a REPL. Connectivity is
// watched in the background; reports saved while offline are queued and sent
// when the server becomes reachable again.
//
// Commands:
//   - site <id>           select the site being visited
//   - save                capture a report for the current site
//   - list                show committed reports and queued drafts
//   - sync                run a sync pass now (online only)
//   - status              connectivity, pending badge, last sync
//   - discard <localId>   drop a queued draft
//   - delete <remoteId>   delete a committed report (online only)
//
// Background notifications are printed before each prompt.
package cli
