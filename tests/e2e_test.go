package tests

import (
	"fmt"
	"testing"
	"time"
)

func TestFullOwnershipFlow(t *testing.T) {
	requireServer(t)

	// STEP 1: Create an organization
	orgName := fmt.Sprintf("E2E Group %d", time.Now().UnixNano())
	orgResp := gqlRequest(t, `
		mutation CreateOrg($name: String!, $description: String) {
			createOrganization(name: $name, description: $description) {
				id
				name
			}
		}
	`, map[string]interface{}{
		"name":        orgName,
		"description": "End-to-end test organization",
	})
	orgID := stringField(t, nested(t, orgResp.Data, "createOrganization"), "id")

	// STEP 2: Create a parent and a subsidiary
	createEntity := `
		mutation CreateEntity($input: CreateEntityInput!) {
			createEntity(input: $input) {
				id
				name
				version
			}
		}
	`
	parentResp := gqlRequest(t, createEntity, map[string]interface{}{
		"input": map[string]interface{}{
			"organizationId": orgID,
			"name":           "E2E Holdings",
			"code":           "E2EH",
			"entityType":     "CORPORATION",
			"jurisdiction":   "US-DE",
			"effectiveFrom":  "2020-01-01",
		},
	})
	parentID := stringField(t, nested(t, parentResp.Data, "createEntity"), "id")

	subResp := gqlRequest(t, createEntity, map[string]interface{}{
		"input": map[string]interface{}{
			"organizationId": orgID,
			"name":           "E2E Ops",
			"code":           "E2EO",
			"entityType":     "LLC",
			"jurisdiction":   "US-DE",
			"effectiveFrom":  "2020-01-01",
		},
	})
	subID := stringField(t, nested(t, subResp.Data, "createEntity"), "id")

	// STEP 3: Link them with a primary 80% edge
	gqlRequest(t, `
		mutation CreateEdge($input: OwnershipEdgeInput!) {
			createOwnershipEdge(input: $input) {
				id
				percent
			}
		}
	`, map[string]interface{}{
		"input": map[string]interface{}{
			"organizationId": orgID,
			"ownerId":        parentID,
			"ownedId":        subID,
			"percent":        "80",
			"primary":        true,
			"effectiveFrom":  "2020-06-01",
		},
	})

	// STEP 4: Project the graph after the edge takes effect
	graphResp := gqlRequest(t, `
		query Graph($organizationId: ID!, $asOf: String!) {
			ownershipGraph(organizationId: $organizationId, asOf: $asOf) {
				nodes { entity { name } }
				edges { percent }
				findings { kind }
			}
		}
	`, map[string]interface{}{
		"organizationId": orgID,
		"asOf":           "2021-01-01",
	})
	graph := nested(t, graphResp.Data, "ownershipGraph")
	nodes := graph["nodes"].([]interface{})
	if len(nodes) != 2 {
		t.Fatalf("graph has %d nodes, want 2", len(nodes))
	}
	edges := graph["edges"].([]interface{})
	if len(edges) != 1 {
		t.Fatalf("graph has %d edges, want 1", len(edges))
	}

	// STEP 5: Before the edge's effective date the graph must be edge-free
	earlyResp := gqlRequest(t, `
		query Graph($organizationId: ID!, $asOf: String!) {
			ownershipGraph(organizationId: $organizationId, asOf: $asOf) {
				edges { id }
			}
		}
	`, map[string]interface{}{
		"organizationId": orgID,
		"asOf":           "2020-03-01",
	})
	earlyEdges := nested(t, earlyResp.Data, "ownershipGraph")["edges"].([]interface{})
	if len(earlyEdges) != 0 {
		t.Fatalf("graph at 2020-03-01 has %d edges, want 0", len(earlyEdges))
	}

	// STEP 6: Effective ownership follows the primary chain
	effResp := gqlRequest(t, `
		query Eff($organizationId: ID!, $entityId: ID!, $asOf: String!) {
			effectiveOwnership(organizationId: $organizationId, entityId: $entityId, asOf: $asOf) {
				percent
				chain
			}
		}
	`, map[string]interface{}{
		"organizationId": orgID,
		"entityId":       subID,
		"asOf":           "2021-01-01",
	})
	eff := nested(t, effResp.Data, "effectiveOwnership")
	if eff["percent"] != "80.0000" {
		t.Errorf("effective ownership = %v, want 80.0000", eff["percent"])
	}
	chain := eff["chain"].([]interface{})
	if len(chain) != 2 || chain[0] != parentID {
		t.Errorf("chain = %v, want [parent sub]", chain)
	}

	// STEP 7: Updating an entity appends a version; the old read still works
	gqlRequest(t, `
		mutation Update($id: ID!, $input: UpdateEntityInput!, $effectiveAsOf: String!) {
			updateEntity(id: $id, input: $input, effectiveAsOf: $effectiveAsOf) {
				id
				jurisdiction
				version
			}
		}
	`, map[string]interface{}{
		"id":            subID,
		"input":         map[string]interface{}{"jurisdiction": "UK"},
		"effectiveAsOf": "2022-01-01",
	})

	oldRead := gqlRequest(t, `
		query Entity($id: ID!, $asOf: String!) {
			entity(id: $id, asOf: $asOf) {
				jurisdiction
				version
			}
		}
	`, map[string]interface{}{
		"id":   subID,
		"asOf": "2021-06-01",
	})
	oldEntity := nested(t, oldRead.Data, "entity")
	if oldEntity["jurisdiction"] != "US-DE" {
		t.Errorf("entity at 2021-06-01 reads %v, want the pre-update US-DE", oldEntity["jurisdiction"])
	}

	// STEP 8: The change log recorded both writes
	logResp := gqlRequest(t, `
		query Log($entityId: ID!) {
			changeLog(entityId: $entityId) {
				operation
				actor
			}
		}
	`, map[string]interface{}{
		"entityId": subID,
	})
	records := logResp.Data["changeLog"].([]interface{})
	if len(records) != 2 {
		t.Fatalf("change log has %d records, want 2", len(records))
	}
	first := records[0].(map[string]interface{})
	if first["operation"] != "CREATE" {
		t.Errorf("first change log record = %v, want CREATE", first["operation"])
	}
}

func TestScenarioFlow(t *testing.T) {
	requireServer(t)

	orgResp := gqlRequest(t, `
		mutation CreateOrg($name: String!) {
			createOrganization(name: $name) { id }
		}
	`, map[string]interface{}{
		"name": fmt.Sprintf("E2E Scenario Group %d", time.Now().UnixNano()),
	})
	orgID := stringField(t, nested(t, orgResp.Data, "createOrganization"), "id")

	entityResp := gqlRequest(t, `
		mutation CreateEntity($input: CreateEntityInput!) {
			createEntity(input: $input) { id }
		}
	`, map[string]interface{}{
		"input": map[string]interface{}{
			"organizationId": orgID,
			"name":           "Target GmbH",
			"code":           "TGT",
			"entityType":     "GMBH",
			"jurisdiction":   "DE",
			"effectiveFrom":  "2020-01-01",
		},
	})
	entityID := stringField(t, nested(t, entityResp.Data, "createEntity"), "id")

	wsResp := gqlRequest(t, `
		mutation CreateWorkspace($organizationId: ID!, $name: String!) {
			createWorkspace(organizationId: $organizationId, name: $name) { id }
		}
	`, map[string]interface{}{
		"organizationId": orgID,
		"name":           "divestment planning",
	})
	wsID := stringField(t, nested(t, wsResp.Data, "createWorkspace"), "id")

	scResp := gqlRequest(t, `
		mutation CreateScenario($workspaceId: ID!, $name: String!) {
			createScenario(workspaceId: $workspaceId, name: $name) { id }
		}
	`, map[string]interface{}{
		"workspaceId": wsID,
		"name":        "sell target",
	})
	scID := stringField(t, nested(t, scResp.Data, "createScenario"), "id")

	// Delete the entity inside the scenario only
	gqlRequest(t, `
		mutation Apply($scenarioId: ID!, $input: ScenarioDeltaInput!) {
			applyScenarioDelta(scenarioId: $scenarioId, input: $input) { id }
		}
	`, map[string]interface{}{
		"scenarioId": scID,
		"input": map[string]interface{}{
			"kind":     "ENTITY",
			"op":       "DELETE",
			"targetId": entityID,
		},
	})

	graphQuery := `
		query Graph($organizationId: ID!, $asOf: String!, $scenarioId: ID) {
			ownershipGraph(organizationId: $organizationId, asOf: $asOf, scenarioId: $scenarioId) {
				nodes { entity { id } }
			}
		}
	`
	mainResp := gqlRequest(t, graphQuery, map[string]interface{}{
		"organizationId": orgID,
		"asOf":           "2024-01-01",
	})
	mainNodes := nested(t, mainResp.Data, "ownershipGraph")["nodes"].([]interface{})
	if len(mainNodes) != 1 {
		t.Fatalf("main universe has %d nodes, want 1", len(mainNodes))
	}

	scenarioResp := gqlRequest(t, graphQuery, map[string]interface{}{
		"organizationId": orgID,
		"asOf":           "2024-01-01",
		"scenarioId":     scID,
	})
	scenarioNodes := nested(t, scenarioResp.Data, "ownershipGraph")["nodes"].([]interface{})
	if len(scenarioNodes) != 0 {
		t.Fatalf("scenario universe has %d nodes, want 0 after delete", len(scenarioNodes))
	}
}
