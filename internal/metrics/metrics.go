// Package metrics define y registra las métricas Prometheus propias de la
// aplicación. Es la única fuente de verdad de nombres, labels y help strings;
// promauto las registra en el registry por defecto al cargar el paquete.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "cobranzas"

// HierarchyReassignTotal cuenta reasignaciones de gerente por resultado.
// Label result: "ok", "invalid", "cycle_rejected", "error".
var HierarchyReassignTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "hierarchy_reassign_total",
		Help:      "Reasignaciones de gerente procesadas, por resultado.",
	},
	[]string{"result"},
)

// HierarchyMovedUsers cuenta usuarios movidos (semillas + descendientes).
var HierarchyMovedUsers = promauto.NewCounter(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "hierarchy_moved_users_total",
		Help:      "Usuarios cuyo manager_id fue reescrito por el motor de reasignación.",
	},
)

// HierarchyRepairsTotal cuenta self-loops (manager_id = id) limpiados por el repair pass.
var HierarchyRepairsTotal = promauto.NewCounter(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "hierarchy_repairs_total",
		Help:      "Self-loops de manager_id limpiados por la pasada de reparación.",
	},
)

// OwnershipTransfersTotal cuenta transferencias planas de cartera entre vendedores.
var OwnershipTransfersTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "ownership_transfers_total",
		Help:      "Transferencias de cartera vendedor a vendedor, por resultado.",
	},
	[]string{"result"},
)

// PaymentsRecordedTotal cuenta abonos registrados.
// Label outcome: "ok", "rejected", "error".
var PaymentsRecordedTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "payments_recorded_total",
		Help:      "Abonos registrados contra deudas, por resultado.",
	},
	[]string{"outcome"},
)

// DebtsImportedTotal cuenta filas del import masivo por acción.
// Label action: "inserted", "updated", "failed".
var DebtsImportedTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "debts_imported_total",
		Help:      "Filas procesadas por el import masivo de cuentas por cobrar.",
	},
	[]string{"action"},
)
