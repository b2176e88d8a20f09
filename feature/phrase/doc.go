// Package phrase implements the catch-phrase feature.
//
// It holds the agent's fixed, ordered phrase set and exposes it through a
// selection service and a single HTTP endpoint.
//
// # Components
//
//   - Service: Holds the immutable PhraseSet and selects either the
//     signature phrase (index 0) or a uniformly random member.
//   - Handler: Exposes the HTTP endpoint and parses the 'random' query
//     parameter.
//   - Feature: Registers the feature with the application loader.
//
// # HTTP Endpoints
//
//   - GET /phrase : Returns {"random": <bool>, "phrase": "<string>"}.
//     Random mode is enabled only by the exact query value random=true.
package phrase
