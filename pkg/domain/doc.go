// Package domain contains the business-directory types shared by the moderation
// engine: companies (the canonical entities owners edit), the change requests that
// stage their edits and the revisions written when a change is applied. The types
// carry no infrastructure concerns so storage, transport and workers can share them.
package domain
