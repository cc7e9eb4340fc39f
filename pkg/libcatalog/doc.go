//
// libcatalog is a client that reads brands from the item catalog API.
//

// Create client
//
//	client, err := libcatalog.NewDefaultClient("http://item-catalog.lan:8080")
//	if err != nil {
//		log.Fatal(err)
//	}
//
// Get all items
//
//	items, err := client.ReadItems(context.Background())
//	if err != nil {
//		if rerr, ok := libcatalog.AsRemoteCallError(err); ok {
//			log.Fatalf("catalog call failed (%s): %v", rerr.Kind, rerr)
//		}
//		log.Fatal(err)
//	}
//
//	for _, item := range items {
//		fmt.Println(item.ID, item.Name)
//	}
package libcatalog
