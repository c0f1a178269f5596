// Package liegeo is a Riemannian geometry toolkit for Lie groups carrying
// invariant metrics, plus kernel metrics on landmark configurations.
//
// 🚀 What is liegeo?
//
//	A pure-Go library that brings together:
//		• Group primitives: SO(n) and the Euclidean vector group, with
//		  exponential/logarithm maps and tangent-space translations
//		• Lie algebras: canonical and Gram–Schmidt-orthonormalized bases
//		• Invariant metrics: inner products, connection, curvature tensor,
//		  sectional curvature and its covariant derivative
//		• Geodesics: closed-form exp/log where the metric allows it, and
//		  Euler–Poincaré integration plus shooting logs everywhere else
//		• Landmarks: LDDMM-style kernel metrics with Hamiltonian geodesics
//
// ✨ Why choose liegeo?
//
//   - Flat coordinate slices – every point and tangent vector is a plain
//     []float64, easy to feed to optimizers and integrators
//   - Explicit error contracts – sentinel errors per package, no panics
//   - Pluggable numerics – fixed-step Euler/RK2/RK4 schemes with group-aware
//     position transport
//
// Everything is organized under five subpackages:
//
//	group/      — Lie group implementations (SO(n), Euclidean R^d)
//	liealgebra/ — algebra bases and orthonormalization
//	integrator/ — fixed-step ODE schemes with pluggable transport
//	invariant/  — invariant metrics: inner products, curvature, geodesics
//	landmark/   — kernel and L2 metrics on landmark configurations
//
// Quick example:
//
//	so, _ := group.NewSpecialOrthogonal(3)
//	m, _ := invariant.NewBiInvariant(so)
//	rot := so.Exp(generator)            // group exponential
//	back, _ := m.LogFromIdentity(rot)   // metric logarithm, here the same map
//
// See each subpackage's doc.go for the full API surface and error model.
package liegeo
