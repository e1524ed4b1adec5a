// Package gadget provides the Gadget Lifecycle Service for the Gadget
// Armoury.
//
// The lifecycle service is the core of the armoury: it manages gadget
// records from creation (with randomly generated spy codenames) through
// deployment, decommissioning, and confirmed self-destruction.
//
// # Architecture
//
//	┌────────────────────────────────────────────────────────────────────┐
//	│                      Gadget Lifecycle Service                       │
//	│                                                                     │
//	│  ┌────────────────┐   ┌──────────────────┐   ┌──────────────────┐  │
//	│  │    Service     │   │    Repository    │   │    CodeStore     │  │
//	│  │  (service.go)  │──▶│ (repository.go)  │   │ (selfdestruct.go)│  │
//	│  │                │   │                  │   │                  │  │
//	│  │ • Create/List  │   │ • SQLite queries │   │ • Pending codes  │  │
//	│  │ • Update       │   │ • Unique names   │   │ • Single use     │  │
//	│  │ • Decommission │   │ • Soft retire    │   │ • TTL expiry     │  │
//	│  │ • Self-destruct│   └──────────────────┘   └──────────────────┘  │
//	│  └────────────────┘                                                 │
//	└────────────────────────────────────────────────────────────────────┘
//
// # Key Types
//
//   - Gadget: a single item of field equipment with a lifecycle status
//   - Status: Available, Deployed, Destroyed, or Decommissioned
//   - MissionAssessment: a gadget plus a freshly rolled success probability
//   - CodeStore: in-memory store of pending self-destruct confirmation codes
//
// # Usage
//
//	repo := gadget.NewSQLiteRepository(db.DB())
//	codes := gadget.NewCodeStore()
//	svc := gadget.NewService(repo, codes)
//
//	g, err := svc.Create(ctx)                     // "The Kraken", Available
//	code, err := svc.GenerateSelfDestructCode(ctx, g.ID)
//	g, err = svc.ConfirmSelfDestruct(ctx, g.ID, code)  // Destroyed
//
// Mission success probabilities are rolled per listing and never stored;
// two consecutive lists of the same gadget report different numbers.
//
// Self-destruct is a two-step sequence: generate a confirmation code,
// then confirm with the exact code. Codes are single use, expire after a
// short TTL, and survive a failed (mismatched) confirmation attempt.
package gadget
