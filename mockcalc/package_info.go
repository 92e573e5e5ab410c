// Package mockcalc contains in-process stand-ins for the calculator application's
// components: a simplified production-chain calculator, the visualizer's
// direction-selection state, and the item dropdown's style model. The real
// implementations live in the web application; these mocks exist so the contract
// suites can assert the behavior the application is expected to have.
package mockcalc
